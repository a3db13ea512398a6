package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/configuration"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/controller"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/database"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/route"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/service"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/storage"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/store"
	"github.com/PLP-MERN-Stack-Development/mern-final-project-Chebbyyy/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type stores struct {
	users     store.UserStore
	resources store.ResourceStore
	photos    store.PhotoStore
	health    store.Pinger
}

func main() {
	config, err := configuration.ReadProperties()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(config.GinMode)

	st, closeStore, err := openStores(config)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer closeStore()

	files, photoDir, err := openFileStore(config)
	if err != nil {
		log.Fatal("Failed to initialise file storage:", err)
	}

	tokens, err := utils.NewTokenManager(config.JWT.Secret, config.JWT.Issuer, config.JWT.TTL)
	if err != nil {
		log.Fatal(err)
	}
	auth, err := service.NewAuthService(st.users, tokens)
	if err != nil {
		log.Fatal(err)
	}

	handler := &controller.Handler{
		Auth:      auth,
		Resources: service.NewResourceService(st.resources),
		Gallery:   service.NewGalleryService(st.photos, st.users, files, config.Upload.PublicPath),
		Uploads:   service.NewUploadPipeline(st.photos, files, config.Upload.MaxBytes),
		Files:     files,
		Health:    st.health,
	}

	router := route.NewRouter(handler, route.Options{
		PublicPath:   config.Upload.PublicPath,
		PhotoDir:     photoDir,
		Requests:     config.RateLimit.Requests,
		AuthRequests: config.RateLimit.AuthRequests,
		Window:       config.RateLimit.Window,
		DebugPprof:   config.DebugPprof,
	}, cors.New(corsConfig(config.CORS.Origins)))

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Server running on port %s (store=%s, storage=%s)", config.Port, config.StoreDriver, config.Storage.Driver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func openStores(config *configuration.Properties) (*stores, func(), error) {
	if config.StoreDriver == configuration.StoreMemory {
		log.Println("STORE_DRIVER=memory: data is kept in process memory only")
		memory := store.NewMemory()
		return &stores{
			users:     memory.Users(),
			resources: memory.Resources(),
			photos:    memory.Photos(),
			health:    memory,
		}, func() {}, nil
	}

	db, err := database.Connect(config.Mongo.URI, config.Mongo.Database, config.Mongo.Timeout)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Mongo.Timeout)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Println("Mongo index creation error:", err)
	}

	closeStore := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Println("Mongo disconnect error:", err)
		}
	}
	return &stores{
		users:     store.NewMongoUsers(db.DB),
		resources: store.NewMongoResources(db.DB),
		photos:    store.NewMongoPhotos(db.DB),
		health:    db,
	}, closeStore, nil
}

// openFileStore returns the configured driver and, for the disk driver, the
// directory to serve photos from.
func openFileStore(config *configuration.Properties) (storage.FileStore, string, error) {
	switch config.Storage.Driver {
	case configuration.StorageS3:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		files, err := storage.NewS3(ctx, storage.S3Options{
			Bucket:     config.S3.Bucket,
			Region:     config.S3.Region,
			Endpoint:   config.S3.Endpoint,
			AccessKey:  config.S3.AccessKey,
			SecretKey:  config.S3.SecretKey,
			PresignTTL: config.S3.PresignTTL,
		})
		return files, "", err
	case configuration.StorageMinio:
		files, err := storage.NewMinio(storage.MinioOptions{
			Endpoint:   config.Minio.Endpoint,
			AccessKey:  config.Minio.AccessKey,
			SecretKey:  config.Minio.SecretKey,
			Bucket:     config.Minio.Bucket,
			UseSSL:     config.Minio.UseSSL,
			PresignTTL: config.Minio.PresignTTL,
		})
		return files, "", err
	default:
		disk := storage.NewDisk(config.Upload.Dir)
		return disk, disk.PhotoDir(), nil
	}
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) > 0 {
		config.AllowOrigins = origins
		return config
	}
	config.AllowOriginFunc = func(origin string) bool {
		return strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")
	}
	return config
}
