package main

import (
	"fmt"
	"log"
	"os"

	"dev-discuss/ai"
	"dev-discuss/controllers"
	"dev-discuss/database"
	"dev-discuss/environment"
	"dev-discuss/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	router = gin.Default()
)

// runs before main; the order of package inits is undefined, so nothing
// here may touch connections
func init() {
	// Load Config
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the process environment")
	}
}

func handleRequests() {
	router.Use(middleware.CORSMiddleware())

	router.GET("/", controllers.Root)
	router.GET("/status", controllers.Status)

	// questions & comments
	router.GET("/questions", controllers.ListQuestions)
	router.GET("/questions/:id", controllers.GetQuestion)
	router.POST("/questions", controllers.AddQuestion)
	router.GET("/questions/tag/:tag", controllers.ListQuestionsByTag)
	router.POST("/questions/comments/:id", controllers.AddComment)
	router.POST("/questions/:id/like", controllers.ToggleLike)
	router.GET("/questions/:id/visits", controllers.GetQuestionVisits)
	router.DELETE("/userQuestions/:id", controllers.DeleteUserQuestion)
	router.GET("/tags", controllers.ListTags)

	// bookmarks
	router.POST("/saves", controllers.AddSave)
	router.GET("/saves", controllers.ListSaves)
	router.DELETE("/saves/:id", controllers.DeleteSave)

	// blogs & events
	router.POST("/blogs", controllers.AddBlog)
	router.GET("/blogs", controllers.ListBlogs)
	router.GET("/blogs/:id", controllers.GetBlog)
	router.POST("/events", controllers.AddEvent)
	router.GET("/events", controllers.ListEvents)
	router.GET("/events/:id", controllers.GetEvent)

	// gamified progress
	router.GET("/problems", controllers.ListProblems)
	router.POST("/problems", controllers.SubmitProblem)
	router.GET("/problemProgress/:email", controllers.GetProblemProgress)
	router.GET("/shortQ", controllers.ListShortQuestions)
	router.POST("/shortQ", controllers.SubmitShortQuestion)
	router.GET("/shortQProgress/:email", controllers.GetShortQuestionProgress)

	// AI features
	router.POST("/chat", controllers.Chat)
	router.POST("/fixFlow", controllers.FixFlow)

	// users & points
	router.POST("/users", controllers.UpsertUser)
	router.GET("/users", controllers.GetUser)
	router.GET("/users/points-breakdown", controllers.GetPointsBreakdown)
	router.POST("/users/login-point", controllers.AwardLoginPoint)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "5000"
	}
	router.Run(":" + port)
}

func main() {
	// Connect to main database here (mongoDB)
	err := database.OpenConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseConnection()

	// connect to the analytics stores (redis + influx)
	err = database.OpenRedisConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseRedisConnection()

	err = database.OpenInfluxConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseInfluxConnection()

	// build the AI client
	aiClient, err := ai.NewClient()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize the Models
	environment.Initialize(aiClient)

	fmt.Println("Dev Discuss Server is running now")
	handleRequests()
}
