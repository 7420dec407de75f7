package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/br00tm/DeliverIA/internal/aiclient"
	"github.com/br00tm/DeliverIA/internal/bus"
	"github.com/br00tm/DeliverIA/internal/cart"
	"github.com/br00tm/DeliverIA/internal/config"
	"github.com/br00tm/DeliverIA/internal/database"
	"github.com/br00tm/DeliverIA/internal/handlers"
	"github.com/br00tm/DeliverIA/internal/menu"
	"github.com/br00tm/DeliverIA/internal/models"
	"github.com/br00tm/DeliverIA/internal/orders"
	"github.com/br00tm/DeliverIA/internal/storage"
	"github.com/br00tm/DeliverIA/internal/storage/memstore"
	"github.com/br00tm/DeliverIA/internal/storage/mongostore"
	"github.com/br00tm/DeliverIA/internal/storage/redisstore"
)

func main() {
	config.Load()

	store, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close(context.Background())

	log.Println("storage driver ready:", config.AppEnv.StorageDriver)

	changeBus := bus.New()
	cartSvc := cart.NewService(store, changeBus, config.AppEnv.PromoCode, config.AppEnv.PromoRate)
	menuSvc := menu.NewService(store, changeBus)
	orderSvc := orders.NewService(
		store,
		changeBus,
		cartSvc,
		config.AppEnv.DeliveryFee,
		models.OrderStatus(config.AppEnv.PaymentConfirmStatus),
	)
	ai := aiclient.New(config.AppEnv.AIBackendURL, config.AppEnv.AIBackendTimeout)

	r := gin.Default()

	r.GET("/", handlers.Home())

	r.GET("/menu", handlers.GetMenu(menuSvc))
	r.POST("/menu/generated", handlers.RecordGeneratedItem(menuSvc))
	r.POST("/menu/custom", handlers.GenerateCustomMenu(ai, menuSvc))

	r.GET("/cart", handlers.GetCart(cartSvc))
	r.POST("/cart/items", handlers.AddCartItem(cartSvc))
	r.PUT("/cart/items/:id", handlers.UpdateCartItem(cartSvc))
	r.DELETE("/cart/items/:id", handlers.RemoveCartItem(cartSvc))
	r.DELETE("/cart", handlers.ClearCart(cartSvc))
	r.POST("/cart/promo", handlers.ApplyPromo(cartSvc))

	r.POST("/orders", handlers.CreateOrder(orderSvc, config.AppEnv.JWTSecret))
	r.GET("/orders", handlers.GetOrders(orderSvc))
	r.GET("/orders/:id", handlers.GetOrder(orderSvc))
	r.GET("/orders/:id/tracking", handlers.GetOrderTracking(orderSvc))
	r.POST("/orders/:id/cancel", handlers.CancelOrder(orderSvc))
	r.POST("/orders/:id/advance", handlers.AdvanceOrder(orderSvc))
	r.POST("/orders/:id/payment/pix", handlers.CreatePixPayment(orderSvc, ai))
	r.POST("/orders/:id/payment/confirm", handlers.ConfirmPayment(orderSvc, ai))

	r.POST("/recommendations", handlers.GetRecommendations(ai))
	r.GET("/meals", handlers.GetMeals(ai))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func openStore() (storage.Store, error) {
	switch config.AppEnv.StorageDriver {
	case "memory":
		return memstore.New(), nil
	case "redis":
		return redisstore.New(config.AppEnv.RedisURL, config.AppEnv.RedisNamespace)
	case "mongo":
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())
		if err := database.EnsureStateIndexes(db); err != nil {
			log.Printf("⚠️ state index warning: %v", err)
		}
		return mongostore.New(client, db), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", config.AppEnv.StorageDriver)
}
