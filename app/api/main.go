package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/listingapi/app/api/docs"
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/database/redisclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/base/metrics"
	"github.com/x-xyz/listingapi/base/priceformatter"
	bValidator "github.com/x-xyz/listingapi/base/validator"
	"github.com/x-xyz/listingapi/domain/keys"
	mmiddleware "github.com/x-xyz/listingapi/middleware"
	"github.com/x-xyz/listingapi/service/cache"
	"github.com/x-xyz/listingapi/service/cache/provider"
	"github.com/x-xyz/listingapi/service/cache/provider/primitive"
	redisCacheProvider "github.com/x-xyz/listingapi/service/cache/provider/redis"
	"github.com/x-xyz/listingapi/service/pyth"
	"github.com/x-xyz/listingapi/service/query"
	"github.com/x-xyz/listingapi/service/redis"
	auth_delivery "github.com/x-xyz/listingapi/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/listingapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/listingapi/stores/auth/usecase"
	balance_delivery "github.com/x-xyz/listingapi/stores/balance/delivery/http"
	balance_repository "github.com/x-xyz/listingapi/stores/balance/repository"
	balance_usecase "github.com/x-xyz/listingapi/stores/balance/usecase"
	event_repository "github.com/x-xyz/listingapi/stores/event/repository"
	event_usecase "github.com/x-xyz/listingapi/stores/event/usecase"
	hc_delivery "github.com/x-xyz/listingapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/listingapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/listingapi/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/listingapi/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/listingapi/stores/listing/repository"
	listing_usecase "github.com/x-xyz/listingapi/stores/listing/usecase"
	oracle_delivery "github.com/x-xyz/listingapi/stores/oracle/delivery/http"
	oracle_usecase "github.com/x-xyz/listingapi/stores/oracle/usecase"
	receipt_delivery "github.com/x-xyz/listingapi/stores/receipt/delivery/http"
	receipt_repository "github.com/x-xyz/listingapi/stores/receipt/repository"
	receipt_usecase "github.com/x-xyz/listingapi/stores/receipt/usecase"
	settlement_delivery "github.com/x-xyz/listingapi/stores/settlement/delivery/http"
	settlement_repository "github.com/x-xyz/listingapi/stores/settlement/repository"
	settlement_usecase "github.com/x-xyz/listingapi/stores/settlement/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvPrefix("LISTING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("redis_cache.name", "cache")
	viper.SetDefault("redis_cache.poolMultiplier", 20)
	viper.SetDefault("oracle.endpoint", pyth.DefaultEndpoint)
	viper.SetDefault("oracle.maxAge", 30)
	viper.SetDefault("oracle.timeout", 10*time.Second)
	viper.SetDefault("oracle.cacheTtl", 2*time.Second)
	viper.SetDefault("oracle.cacheProvider", "primitive")
	viper.SetDefault("settlement.smallestUnitsPerToken", 1_000_000_000)
	viper.SetDefault("settlement.lockTtl", 30*time.Second)
	viper.SetDefault("settlement.recoveryInterval", 30*time.Second)
	viper.SetDefault("settlement.recoveryGrace", time.Minute)
	viper.SetDefault("settlement.recoveryWorkers", 8)
}

//	@title			Listing API
//	@version		1.0
//	@description	API Document for product listings and purchases settled in native token.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	v, err := bValidator.New()
	if err != nil {
		log.Log().WithField("err", err).Panic("validator.New failed")
	}
	e.Validator = bValidator.NewCustomValidator(v)

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		Uri:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		EnableSSL:          viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	indexes := []mongoclient.IndexSpec{}
	indexes = append(indexes, listing_repository.Indexes...)
	indexes = append(indexes, event_repository.Indexes...)
	indexes = append(indexes, balance_repository.Indexes...)
	indexes = append(indexes, receipt_repository.Indexes...)
	indexes = append(indexes, settlement_repository.Indexes...)
	if err := mongoclient.EnsureIndexes(context, mongoClient, indexes); err != nil {
		context.WithField("err", err).Panic("mongoclient.EnsureIndexes failed")
	}

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		},
	)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCacheProvider.NewRedis(redisCache))

	// init oracle
	var quoteProvider provider.Provider
	switch viper.GetString("oracle.cacheProvider") {
	case "redis":
		quoteProvider = redisCacheProvider.NewRedis(redisCache)
	default:
		quoteProvider = primitive.NewPrimitive("oracleQuote", 1)
	}
	pythClient := pyth.NewClient(&pyth.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("oracle.timeout"),
		Endpoint:   viper.GetString("oracle.endpoint"),
	})
	oracle := oracle_usecase.New(&oracle_usecase.OracleUseCaseCfg{
		Client: pythClient,
		FeedId: viper.GetString("oracle.feedId"),
		MaxAge: viper.GetInt64("oracle.maxAge"),
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("oracle.cacheTtl"),
			Pfx:   keys.PfxOracleQuote,
			Cache: quoteProvider,
		}),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(q, redisCache)
	listingRepo := listing_repository.New(q)
	eventRepo := event_repository.New(q)
	balanceRepo := balance_repository.New(q)
	receiptRepo := receipt_repository.New(q)
	intentRepo := settlement_repository.NewIntentRepo(q)
	locker := settlement_repository.NewLocker(redisCache)

	unitsPerToken := viper.GetUint64("settlement.smallestUnitsPerToken")
	hc := hc_usecase.New(hcRepo)
	event := event_usecase.New(eventRepo)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:       listingRepo,
		Transactor: q,
		Emitter:    event,
	})
	balance := balance_usecase.New(balanceRepo)
	receipt := receipt_usecase.New(receiptRepo)
	settlement := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Listing:         listingRepo,
		Balance:         balanceRepo,
		Receipt:         receiptRepo,
		Intent:          intentRepo,
		Locker:          locker,
		Oracle:          oracle,
		Emitter:         event,
		Transactor:      q,
		UnitsPerToken:   unitsPerToken,
		LockTtl:         viper.GetDuration("settlement.lockTtl"),
		RecoveryWorkers: viper.GetInt("settlement.recoveryWorkers"),
	})
	priceFormatter := priceformatter.NewPriceFormatter(&priceformatter.PriceFormatterCfg{
		UnitsPerToken: unitsPerToken,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"))

	adminAddresses := viper.GetStringSlice("admin.addresses")
	auth_middleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listing, event, auth_middleware)
	balance_delivery.New(e, balance, auth_middleware)
	receipt_delivery.New(e, receipt)
	oracle_delivery.New(e, oracle)
	settlement_delivery.New(e, settlement, priceFormatter, auth_middleware)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// resolve purchases interrupted by a crash or a lost connection
	sweeperCtx, stopSweeper := ctx.WithCancel(context)
	sweeper := settlement_usecase.NewSweeper(&settlement_usecase.SweeperCfg{
		Settlement: settlement,
		Interval:   viper.GetDuration("settlement.recoveryInterval"),
		Grace:      viper.GetDuration("settlement.recoveryGrace"),
	})
	sweeper.Start(sweeperCtx)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	stopSweeper()
	sweeper.Wait()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	log.Sync()
}
