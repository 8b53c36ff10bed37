package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/decdev/backend/libav"
	"github.com/xaionaro-go/decdev/device"
	"github.com/xaionaro-go/decdev/types"
	"github.com/xaionaro-go/decdev/videocontext"
	"github.com/xaionaro-go/decdev/window"
	"github.com/xaionaro-go/observability"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [--dec-dev <backend>] --hw-type <type> [--hw-name <name>]\n", os.Args[0])
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	decDev := pflag.String("dec-dev", "auto", "preferred decoder device backend")
	hwType := pflag.String("hw-type", "", "hardware device type (e.g. vaapi, cuda, videotoolbox)")
	hwName := pflag.String("hw-name", "", "hardware device name (backend specific)")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func() { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	devType := types.DeviceTypeFromString(*hwType)
	if devType <= types.DeviceTypeNone {
		pflag.Usage()
		os.Exit(1)
	}

	libav.Register()

	w := &window.Window{
		Config: window.Config{
			DecoderDevice: *decDev,
			HWDeviceType:  devType,
			HWDeviceName:  types.DeviceName(*hwName),
		},
	}

	l.Debugf("opening a decoder device...")
	d, err := device.Create(ctx, w)
	if err != nil {
		l.Fatal(err)
	}
	defer d.Release(ctx)

	l.Debugf("wrapping the device into a video context...")
	vctx, err := videocontext.Create(ctx, d, videocontext.TypeVAAPI, 0, nil)
	if err != nil {
		l.Fatal(err)
	}
	defer vctx.Release(ctx)

	fmt.Printf("backend:%s type:%s\n", d.BackendName(), d.Type)
}
