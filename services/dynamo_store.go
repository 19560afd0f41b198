package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ehsaas_server/models"
	apperr "ehsaas_server/pkg/errors"
)

// DynamoDB-backed implementations of the store interfaces.
//
// Key layout:
//   UserProfiles:  userId
//   VibeActions:   PK = USER#<from>, SK = ACTION#<to>, GSI toUser-index
//   Messages:      PK = room, SK = createdAt (fixed-width UTC timestamp)
//
// PutItem on the (PK, SK) composite key is what gives the vibe ledger its
// upsert-replace semantics: one current action per ordered pair.

const (
	userKeyPrefix   = "USER#"
	actionKeyPrefix = "ACTION#"
)

type DynamoProfileStore struct {
	Dynamo *DynamoService
}

func (s *DynamoProfileStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "profile lookup failed", err)
	}
	if item == nil {
		return nil, apperr.ErrUserNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to parse profile", err)
	}
	return &profile, nil
}

func (s *DynamoProfileStore) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.UserProfilesTable)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "profile scan failed", err)
	}

	var profiles []models.UserProfile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to parse profiles", err)
	}
	return profiles, nil
}

func (s *DynamoProfileStore) IncrementVibeCount(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	_, err := s.Dynamo.UpdateItem(ctx, models.UserProfilesTable,
		"ADD vibeCount :one", key,
		map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "failed to increment vibe count", err)
	}
	return nil
}

type DynamoActionStore struct {
	Dynamo *DynamoService
}

func actionKey(from, to string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: userKeyPrefix + from},
		"SK": &types.AttributeValueMemberS{Value: actionKeyPrefix + to},
	}
}

func (s *DynamoActionStore) PutAction(ctx context.Context, action models.VibeAction) error {
	item, err := attributevalue.MarshalMap(action)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "failed to marshal action", err)
	}
	for k, v := range actionKey(action.FromUser, action.ToUser) {
		item[k] = v
	}
	if err := s.Dynamo.PutItem(ctx, models.VibeActionsTable, item); err != nil {
		return apperr.Wrap(apperr.CodeInternal, "failed to store action", err)
	}
	return nil
}

func (s *DynamoActionStore) GetAction(ctx context.Context, from, to string) (*models.VibeAction, error) {
	item, err := s.Dynamo.GetItem(ctx, models.VibeActionsTable, actionKey(from, to))
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "action lookup failed", err)
	}
	if item == nil {
		return nil, nil
	}

	var action models.VibeAction
	if err := attributevalue.UnmarshalMap(item, &action); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to parse action", err)
	}
	return &action, nil
}

func (s *DynamoActionStore) ActionsFrom(ctx context.Context, from string) ([]models.VibeAction, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.VibeActionsTable, "",
		"PK = :user",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: userKeyPrefix + from},
		},
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "action query failed", err)
	}
	return unmarshalActions(items)
}

func (s *DynamoActionStore) ActionsTo(ctx context.Context, to string) ([]models.VibeAction, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.VibeActionsTable, models.ToUserIndex,
		"toUser = :user",
		map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: to},
		},
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "action query failed", err)
	}
	return unmarshalActions(items)
}

func unmarshalActions(items []map[string]types.AttributeValue) ([]models.VibeAction, error) {
	var actions []models.VibeAction
	if err := attributevalue.UnmarshalListOfMaps(items, &actions); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to parse actions", err)
	}
	return actions, nil
}

type DynamoMessageStore struct {
	Dynamo *DynamoService
}

func (s *DynamoMessageStore) PutMessage(ctx context.Context, message models.Message) error {
	item, err := attributevalue.MarshalMap(message)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "failed to marshal message", err)
	}
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, item); err != nil {
		return apperr.Wrap(apperr.CodeInternal, "failed to store message", err)
	}
	return nil
}

func (s *DynamoMessageStore) MessagesByRoom(ctx context.Context, room string) ([]models.Message, error) {
	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, "",
		"room = :room",
		map[string]types.AttributeValue{
			":room": &types.AttributeValueMemberS{Value: room},
		},
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "message query failed", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to parse messages", err)
	}
	return messages, nil
}
