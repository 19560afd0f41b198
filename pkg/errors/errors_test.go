package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "ehsaas_server/pkg/errors"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, apperr.CodeConsentRequired, apperr.CodeOf(apperr.ErrConsentRequired))
	assert.Equal(t, apperr.CodeInvalidReference, apperr.CodeOf(apperr.ErrSelfAction))
	assert.Equal(t, apperr.CodeUnknown, apperr.CodeOf(stderrors.New("plain")))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", apperr.ErrUserNotFound)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := apperr.ErrMessageSaveFailed(cause)

	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
