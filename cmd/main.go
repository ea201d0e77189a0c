package main

import (
	"context"

	"github.com/notmarkmiranda/golf-dads-api-sub000/config"
	"github.com/notmarkmiranda/golf-dads-api-sub000/routes"
	"github.com/notmarkmiranda/golf-dads-api-sub000/services"
	"github.com/notmarkmiranda/golf-dads-api-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitLogger()
	utils.InitS3()
	utils.InitMailer()

	gateway, err := services.NewHTTPGateway(services.LoadGatewayConfig())
	if err != nil {
		utils.Logger.Fatalw("push gateway config invalid", "err", err)
	}

	hub := services.NewRealtimeHub()
	prefs := services.NewPreferenceService(config.DB)
	devices := services.NewDeviceService(config.DB)
	push := services.NewPushService(config.DB, gateway, prefs, devices, hub, utils.Logger)
	notifier := services.NewActivityNotifier(config.DB, push, utils.Logger)

	scheduler := services.NewReminderScheduler(config.DB, push, utils.Logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx)

	r := routes.SetupRouter(routes.Deps{
		Devices:      devices,
		Prefs:        prefs,
		Groups:       services.NewGroupService(config.DB),
		Postings:     services.NewPostingService(config.DB, notifier),
		Reservations: services.NewReservationService(config.DB, push, utils.Logger),
		Hub:          hub,
	})
	r.Run(":8080")
}
