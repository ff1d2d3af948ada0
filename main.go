package main

import (
	"log"
	"net/http"
	"os"

	"knowledgehub-api/config"
	"knowledgehub-api/handlers"
	"knowledgehub-api/middleware"
	"knowledgehub-api/repositories"
	"knowledgehub-api/services"
	"knowledgehub-api/task"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize stores: Postgres holds live article state, Mongo holds the
	// immutable version history.
	db := config.InitDB()
	mongoDB := config.InitMongo()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	versionRepo := repositories.NewArticleVersionRepository(mongoDB)

	// Initialize services
	locker := services.NewArticleLocker()
	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo, versionRepo, locker)
	versionService := services.NewArticleVersionService(articleRepo, versionRepo, userRepo, locker)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, articleRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	articleHandler := handlers.NewArticleHandler(articleService)
	versionHandler := handlers.NewArticleVersionHandler(versionService)
	commentHandler := handlers.NewCommentHandler(commentService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	// Background reconciliation between the two stores
	scheduler := task.NewScheduler(articleRepo, versionRepo)
	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal("Failed to register jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/mine", articleHandler.GetMyArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/like", articleHandler.LikeArticle)
				articles.DELETE("/:id/like", articleHandler.UnlikeArticle)
				articles.POST("/:id/favorite", favoriteHandler.AddFavorite)
				articles.DELETE("/:id/favorite", favoriteHandler.RemoveFavorite)

				// Version history
				articles.GET("/:id/versions", versionHandler.GetArticleVersions)
				articles.POST("/:id/versions/:version_number/restore", versionHandler.RestoreArticleVersion)
				articles.DELETE("/:id/versions/:version_number", versionHandler.DeleteArticleVersion)

				// Comments
				articles.POST("/:id/comments", commentHandler.CreateComment)
				articles.GET("/:id/comments", commentHandler.GetComments)
			}

			comments := protected.Group("/comments")
			{
				comments.PUT("/:comment_id", commentHandler.UpdateComment)
				comments.DELETE("/:comment_id", commentHandler.DeleteComment)
				comments.POST("/:comment_id/like", commentHandler.LikeComment)
				comments.DELETE("/:comment_id/like", commentHandler.UnlikeComment)
			}

			protected.GET("/favorites", favoriteHandler.GetFavorites)

			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
			}
		}

		// Public routes
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/search", articleHandler.SearchArticles)
			public.GET("/articles/by-author-and-title", articleHandler.GetArticleByAuthorAndTitle)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:slug", categoryHandler.GetCategoryBySlug)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
