package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"ehsaas_server/config"
	"ehsaas_server/controllers"
	"ehsaas_server/logger"
	"ehsaas_server/models"
	"ehsaas_server/routes"
	"ehsaas_server/services"
	"ehsaas_server/socket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// Stores
	var (
		profiles services.ProfileStore
		actions  services.ActionStore
		messages services.MessageStore
	)
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, contents are volatile")
		store := services.NewMemoryStore()
		profiles, actions, messages = store, store, store
	default:
		logger.Info("initializing DynamoDB client", "region", cfg.Storage.AWSRegion)
		dynamo := &services.DynamoService{Client: services.InitializeDynamoDBClient(cfg.Storage.AWSRegion)}
		profiles = &services.DynamoProfileStore{Dynamo: dynamo}
		actions = &services.DynamoActionStore{Dynamo: dynamo}
		messages = &services.DynamoMessageStore{Dynamo: dynamo}
	}

	// Live layer
	hub := socket.NewHub()

	// Services
	vibeService := &services.VibeService{Profiles: profiles, Actions: actions}
	vibeService.OnMatch = func(userA, userB string) {
		// Both parties listen on their own userId room for match events.
		payload := map[string]interface{}{
			"room":  models.ResolveRoom(userA, userB),
			"users": []string{userA, userB},
		}
		hub.Broadcast(userA, "matched", payload)
		hub.Broadcast(userB, "matched", payload)
	}
	exploreService := &services.ExploreService{Profiles: profiles, Actions: actions}
	matchService := &services.MatchService{Profiles: profiles, Actions: actions}
	chatService := &services.ChatService{Messages: messages, Vibes: vibeService, Live: hub}

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	routes.RegisterExploreRoutes(r, exploreService)
	routes.RegisterVibeRoutes(r, vibeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)

	// Socket.IO server
	socketServer := socket.NewSocketServer(hub, chatService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			logger.Error("socket server stopped", "err", err)
			os.Exit(1)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-ID"},
		AllowCredentials: true,
	}).Handler(r)

	logger.Info("starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Backend)
	if err := http.ListenAndServe(":"+cfg.Server.Port, corsHandler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
