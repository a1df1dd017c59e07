package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/listingpage/base/ctx"
	"github.com/x-xyz/listingpage/base/database/redisclient"
	"github.com/x-xyz/listingpage/base/env"
	"github.com/x-xyz/listingpage/base/log"
	"github.com/x-xyz/listingpage/base/metrics"
	bValidator "github.com/x-xyz/listingpage/base/validator"
	"github.com/x-xyz/listingpage/domain"
	"github.com/x-xyz/listingpage/domain/keys"
	mmiddleware "github.com/x-xyz/listingpage/middleware"
	"github.com/x-xyz/listingpage/service/cache"
	compoundcache "github.com/x-xyz/listingpage/service/cache/compoundCache"
	"github.com/x-xyz/listingpage/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/listingpage/service/cache/provider/redis"
	"github.com/x-xyz/listingpage/service/chain"
	"github.com/x-xyz/listingpage/service/chain/contract"
	"github.com/x-xyz/listingpage/service/discord"
	"github.com/x-xyz/listingpage/service/ens"
	"github.com/x-xyz/listingpage/service/redis"
	"github.com/x-xyz/listingpage/service/wallet"
	auth_delivery "github.com/x-xyz/listingpage/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/listingpage/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/listingpage/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/listingpage/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/listingpage/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/listingpage/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/listingpage/stores/healthcheck/usecase"
	listing_repository "github.com/x-xyz/listingpage/stores/listing/repository"
	listingview_delivery "github.com/x-xyz/listingpage/stores/listingview/delivery/http"
	listingview_usecase "github.com/x-xyz/listingpage/stores/listingview/usecase"
	web_resource_delivery "github.com/x-xyz/listingpage/stores/web_resource/delivery/http"
	web_resource_repository "github.com/x-xyz/listingpage/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/listingpage/stores/web_resource/usecase"
)

const ensChainId = domain.ChainId(1)

var configPath = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("marketplace.address", "0xD0804F2cDFC75A308d786DcA78f0DC617d991CaE")
	viper.SetDefault("marketplace.chainId", 4)
	viper.SetDefault("marketplace.requiredChainId", listingview_usecase.DefaultRequiredChainId)
	viper.SetDefault("offer.currencyChainId", 137)
	viper.SetDefault("listing.cacheTtl", 15*time.Second)
	viper.SetDefault("listing.currencyCacheTtl", time.Hour)
	viper.SetDefault("listing.enrichWorkers", 3)
	viper.SetDefault("listing.localCacheSizeMB", 32)
	viper.SetDefault("ipfs.gateway", "https://ipfs.io/ipfs")
	viper.SetDefault("ipfs.timeout", 10*time.Second)
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("media.cacheTtl", 5*time.Minute)
	viper.SetDefault("auth.tokenTtl", auth_usecase.DefaultTokenTtl)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.Setup(viper.GetBool("debug")); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(goValidator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	rpcs := make(map[domain.ChainId]string)
	if networks != nil {
		for k := range networks.AllSettings() {
			chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
			rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		}
	}
	if url := viper.GetString("ens.rpcUrl"); url != "" {
		rpcs[ensChainId] = url
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	defer chainService.Close()

	// init Redis service, optional
	var redisCache redis.Service
	if uri := viper.GetString("redis_cache.uri"); uri != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool, err := redisclient.ConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retries:        2,
		})
		if err != nil {
			context.WithField("err", err).Panic("redisclient.ConnectRedis failed")
		}
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
	}

	localCache := primitive.NewPrimitive("listingpage", viper.GetInt("listing.localCacheSizeMB"))
	layered := func(pfx string, ttl time.Duration) cache.Service {
		layers := []cache.Service{cache.New(cache.ServiceConfig{Ttl: ttl, Pfx: pfx, Cache: localCache})}
		if redisCache != nil {
			layers = append(layers, cache.New(cache.ServiceConfig{Ttl: ttl, Pfx: pfx, Cache: redisProvider.NewRedis(redisCache)}))
		}
		return compoundcache.NewCompoundCache(layers)
	}

	// web resources
	httpTimeout := viper.GetDuration("http.timeout")
	ipfsTimeout := viper.GetDuration("ipfs.timeout")
	ipfsGateway := viper.GetString("ipfs.gateway")
	// gateway readers only reach the configured gateways, token urls go through the public client
	httpClient := &http.Client{}
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, ipfsGateway, ipfsTimeout)
	if api := viper.GetString("ipfs.api"); api != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(api), ipfsTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(web_resource_repository.NewPublicHttpClient(), httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(httpClient, viper.GetString("ar.gateway"), httpTimeout),
		IpfsGateway:   ipfsGateway,
	})

	// ens on ethereum
	var ensService ens.ENS
	if backend, err := chainService.Backend(ensChainId); err != nil {
		context.WithField("err", err).Warn("ens disabled, no ethereum rpc")
	} else {
		ensService = ens.New(backend, layered(keys.PfxEns, viper.GetDuration("listing.currencyCacheTtl")))
	}

	marketplaceChainId := domain.ChainId(viper.GetInt32("marketplace.chainId"))
	walletKey := env.WalletKey()
	if walletKey == "" {
		walletKey = viper.GetString("wallet.privateKey")
	}
	signer, err := wallet.New(wallet.Cfg{
		PrivateKey: walletKey,
		ChainId:    domain.ChainId(viper.GetInt32("wallet.chainId")),
	}, chainService)
	if err != nil {
		context.WithField("err", err).Panic("wallet.New failed")
	}

	offerCurrency := domain.Address(viper.GetString("offer.currency"))
	if offerCurrency.IsEmpty() {
		if offerCurrency, err = domain.WrappedNative(domain.ChainId(viper.GetInt32("offer.currencyChainId"))); err != nil {
			context.WithField("err", err).Panic("domain.WrappedNative failed")
		}
	}

	// construct repository, usecase and delivery
	marketplace := listing_repository.New(&listing_repository.Cfg{
		Marketplace:   contract.NewMarketplace(chainService, marketplaceChainId, domain.Address(viper.GetString("marketplace.address"))),
		Erc721:        contract.NewErc721(chainService),
		Erc1155:       contract.NewErc1155(chainService),
		Erc20:         contract.NewErc20(chainService),
		Wallet:        signer,
		WebResource:   webResource,
		Ens:           ensService,
		ListingCache:  layered(keys.PfxListing, viper.GetDuration("listing.cacheTtl")),
		CurrencyCache: layered(keys.PfxCurrency, viper.GetDuration("listing.currencyCacheTtl")),
		EnrichWorkers: viper.GetInt("listing.enrichWorkers"),
	})

	notifier, err := discord.New(discord.Config{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		ChainId:   marketplaceChainId,
		SiteUrl:   viper.GetString("discord.siteUrl"),
		Media:     webResource,
	})
	if err != nil {
		context.WithField("err", err).Warn("discord.New failed, trade feed disabled")
		notifier = nil
	}

	listingView := listingview_usecase.New(&listingview_usecase.Cfg{
		Marketplace:     marketplace,
		Wallet:          signer,
		Media:           webResource,
		Notifier:        notifier,
		RequiredChainId: domain.ChainId(viper.GetInt32("marketplace.requiredChainId")),
		OfferCurrency:   offerCurrency,
	})

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.tokenTtl"))
	authMiddleware := auth_middleware.New(auth, viper.GetStringSlice("auth.apiKeys"))

	hc := hc_usecase.New(hc_repo.New(chainService, marketplaceChainId, redisCache))

	mediaCache := layered("media", viper.GetDuration("media.cacheTtl"))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, authMiddleware.ApiKey())
	web_resource_delivery.New(e, webResource, mmiddleware.CacheHttp(mediaCache, mmiddleware.DefaultMaxCachedBody))
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}
	listingview_delivery.New(e, listingView, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
