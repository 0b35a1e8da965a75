package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/quentinrf/the-light/pkg/pb"
	"github.com/quentinrf/the-light/pkg/tlsconfig"
)

const usage = `usage: lightctl [flags] <command>

commands:
  tap               tap the screen
  mode <name>       tap a mode button (screen_simple, screen_traffic_lights, camera_only, camera_and_screen)
  state             print current state
  history <since>   print events since a duration ago, e.g. 1h

flags:
`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := flag.String("addr", "localhost:50051", "light service address")
	certFile := flag.String("tls-cert", "", "client certificate (enables mTLS)")
	keyFile := flag.String("tls-key", "", "client private key")
	caFile := flag.String("tls-ca", "", "CA certificate")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	creds := insecure.NewCredentials()
	if *certFile != "" {
		tlsCfg, err := tlsconfig.LoadClientTLS(*certFile, *keyFile, *caFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("failed to connect")
	}
	defer conn.Close()

	client := pb.NewLightServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, client, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client pb.LightServiceClient, args []string) error {
	switch args[0] {
	case "tap":
		resp, err := client.TapScreen(ctx, &pb.TapScreenRequest{})
		if err != nil {
			return err
		}
		printState(resp.State, resp.Render)

	case "mode":
		if len(args) < 2 {
			return fmt.Errorf("mode needs a name")
		}
		resp, err := client.TapModeButton(ctx, &pb.TapModeButtonRequest{Mode: args[1]})
		if err != nil {
			return err
		}
		printState(resp.State, resp.Render)

	case "state":
		resp, err := client.GetState(ctx, &pb.GetStateRequest{})
		if err != nil {
			return err
		}
		fmt.Printf("session    %s\n", resp.SessionId)
		printState(resp.State, resp.Render)

	case "history":
		since := time.Hour
		if len(args) > 1 {
			d, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("parse duration: %w", err)
			}
			since = d
		}
		now := time.Now()
		resp, err := client.GetHistory(ctx, &pb.GetHistoryRequest{
			StartTime: now.Add(-since).Unix(),
			EndTime:   now.Add(time.Second).Unix(),
		})
		if err != nil {
			return err
		}
		printHistory(resp)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func printState(s *pb.State, r *pb.Render) {
	fmt.Printf("mode       %s\n", s.Mode)
	fmt.Printf("screen     %v\n", s.IsScreenLightOn)
	fmt.Printf("camera     %v\n", s.IsCameraLightOn)
	fmt.Printf("traffic    %d\n", s.TrafficLightsIndex)
	fmt.Printf("background %s\n", r.Background)
	fmt.Printf("torch      %v\n", r.TorchOn)
	for _, b := range r.Buttons {
		mark := " "
		if b.Selected {
			mark = "*"
		}
		fmt.Printf("  %s %-22s %s\n", mark, b.Mode, b.Tint)
	}
}

func printHistory(resp *pb.GetHistoryResponse) {
	for _, e := range resp.Events {
		ts := time.Unix(0, e.Timestamp).Format(time.TimeOnly)
		fmt.Printf("%s  %-16s %-22s %s torch=%v\n", ts, e.Kind, e.State.Mode, e.Background, e.TorchOn)
	}

	kinds := make([]string, 0, len(resp.KindCounts))
	for k := range resp.KindCounts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("%-16s %d\n", k, resp.KindCounts[k])
	}
	fmt.Printf("torch on   %.1f%%\n", resp.TorchOnPct)
}
