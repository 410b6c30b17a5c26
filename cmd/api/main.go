package main

import (
	"context"
	"os"

	"campusnotes/cmd/internal/courses"
	"campusnotes/cmd/internal/domain/policy"
	"campusnotes/cmd/internal/domain/sqlite"
	"campusnotes/cmd/internal/domain/sqlite/repository"
	"campusnotes/cmd/internal/http/handler"
	authmw "campusnotes/cmd/internal/http/middleware"
	"campusnotes/cmd/internal/infrastructure/assistant"
	cognitoclient "campusnotes/cmd/internal/infrastructure/aws/cognito"
	"campusnotes/cmd/internal/infrastructure/aws/storage"
	"campusnotes/cmd/internal/service"
	"campusnotes/cmd/internal/utils"
	"campusnotes/cmd/internal/utils/uid"
	"campusnotes/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/campusnotes/prod/"

func main() {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		panic(err)
	}

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(1)

	if err := utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("COGNITO_USER_POOL_ID")); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Init OpenAI client
	aiClient, err := assistant.NewOpenAIClient()
	if err != nil {
		panic(err)
	}

	catalog := courses.Load("courses.json")

	// Getting repos
	noteRepo := repository.NewNoteRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	mentionRepo := repository.NewMentionRepository(db)
	userRepo := repository.NewUserRepository(db)

	notePolicy := policy.NewNotePolicy()
	commentPolicy := policy.NewCommentPolicy()

	// Getting services
	userService := service.NewUserService(userRepo, validate, cogClient)
	feedService := service.NewFeedService(noteRepo, likeRepo, commentRepo, mentionRepo, catalog)
	noteService := service.NewNoteService(noteRepo, attachmentRepo, likeRepo, commentRepo, notePolicy, catalog, s3Client, validate)
	likeService := service.NewLikeService(noteRepo, likeRepo)
	commentService := service.NewCommentService(noteRepo, commentRepo, mentionRepo, userRepo, commentPolicy, validate)
	mentionService := service.NewMentionService(mentionRepo, commentPolicy)
	assistantService := service.NewAssistantService(noteRepo, aiClient, validate)

	// Getting handlers
	feedRoutes := handler.NewFeedDefault(feedService)
	noteRoutes := handler.NewNoteDefault(noteService)
	commentRoutes := handler.NewCommentDefault(commentService, likeService)
	mentionRoutes := handler.NewMentionDefault(mentionService)
	assistantRoutes := handler.NewAssistantDefault(assistantService)
	userRoutes := handler.NewUserDefault(userService, noteService)
	utilRoutes := handler.NewUtilRoute(catalog)

	authCfg := &authmw.AuthMiddlewareConfig{UserRepo: userRepo}
	auth := authmw.NewAuthMiddleware(authCfg)
	optionalAuth := authmw.NewOptionalAuthMiddleware(authCfg)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("16M"))

	// Feed
	e.GET("/api/feed", feedRoutes.GetFeed, optionalAuth)

	// Notes
	e.GET("/api/notes/:id", noteRoutes.GetNote, optionalAuth)
	e.POST("/api/notes", noteRoutes.CreateNote, auth)
	e.PATCH("/api/notes/:id", noteRoutes.UpdateNote, auth)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote, auth)
	e.GET("/api/attachments/:id/download", noteRoutes.DownloadAttachment)

	// Likes and comments
	e.POST("/api/notes/:id/like", commentRoutes.ToggleLike, auth)
	e.POST("/api/notes/:id/comments", commentRoutes.CreateComment, auth)
	e.PATCH("/api/comments/:id", commentRoutes.UpdateComment, auth)
	e.DELETE("/api/comments/:id", commentRoutes.DeleteComment, auth)

	// Mentions
	e.GET("/api/mentions", mentionRoutes.GetUnread, auth)
	e.POST("/api/mentions/:id/read", mentionRoutes.MarkRead, auth)
	e.POST("/api/mentions/read-all", mentionRoutes.MarkAllRead, auth)

	// Assistant
	e.POST("/api/assistant/summarize", assistantRoutes.Summarize, auth)
	e.POST("/api/assistant/ask", assistantRoutes.AskNote, auth)

	// Users
	e.POST("/api/users/check-email", userRoutes.CheckEmail)
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/logout", userRoutes.Logout, auth)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)
	e.GET("/api/users/me", userRoutes.GetProfile, auth)

	// Misc
	e.GET("/api/courses", utilRoutes.GetCourses)
	e.GET("/health", utilRoutes.Health)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}
