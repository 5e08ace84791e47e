package main

import (
	"context"
	"fmt"
	"time"

	"VideoTube.com/cmd/api/router"
	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	playlistdb "VideoTube.com/cmd/playlist/dal/db"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	tweetdb "VideoTube.com/cmd/tweet/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/cmd/video/common"
	videodb "VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/cmd/video/infras/redis"
	"VideoTube.com/config"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func rabbitmqURL() string {
	rc := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", rc.Username, rc.Password, rc.Addr)
}

func Init() {
	config.Init()
	sf := config.ConfigInfo.Snowflake
	if err := utils.InitSnowflake(sf.WorkerID, sf.DatacenterID); err != nil {
		logrus.Fatalf("snowflake init failed: %v", err)
	}
	database.Init()
	userdb.Init()
	interactiondb.Init()
	relationdb.Init()
	videodb.Init()
	tweetdb.Init()
	playlistdb.Init()
	redis.Load()
	oss.Init()
	jwt.Init()
	if err := mq.InitProducer(rabbitmqURL()); err != nil {
		logrus.Errorf("rabbitmq producer init failed, watch events disabled: %v", err)
	}
}

func main() {
	Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	common.StartWatchConsumer(ctx, rabbitmqURL())
	common.StartVisitSyncWorker(ctx, 30*time.Second)

	h := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(4*1024*1024*1024),
	)

	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * 3600,
	}))

	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	router.Register(h)
	h.Spin()
}
