package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/the-light/internal/domain"
	"github.com/quentinrf/the-light/internal/ports"
	"github.com/quentinrf/the-light/pkg/pb"
)

// LightServiceHandler implements the gRPC LightService
type LightServiceHandler struct {
	pb.UnimplementedLightServiceServer
	ctrl    *ports.Controller
	journal domain.EventJournal
}

// NewLightServiceHandler creates a new gRPC handler. journal may be nil,
// in which case GetHistory reports Unavailable.
func NewLightServiceHandler(ctrl *ports.Controller, journal domain.EventJournal) *LightServiceHandler {
	return &LightServiceHandler{
		ctrl:    ctrl,
		journal: journal,
	}
}

// TapScreen forwards a screen tap to the controller
func (h *LightServiceHandler) TapScreen(ctx context.Context, req *pb.TapScreenRequest) (*pb.TapResponse, error) {
	log.Info().Msg("TapScreen called")

	return convertOutcomeToProto(h.ctrl.TapScreen(ctx)), nil
}

// TapModeButton forwards a mode selector tap to the controller
func (h *LightServiceHandler) TapModeButton(ctx context.Context, req *pb.TapModeButtonRequest) (*pb.TapResponse, error) {
	log.Info().Str("mode", req.Mode).Msg("TapModeButton called")

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		log.Error().Err(err).Str("mode", req.Mode).Msg("invalid mode")
		return nil, status.Errorf(codes.InvalidArgument, "unknown mode %q", req.Mode)
	}

	outcome, err := h.ctrl.TapModeButton(ctx, mode)
	if err != nil {
		log.Error().Err(err).Msg("failed to select mode")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return convertOutcomeToProto(outcome), nil
}

// GetState returns the current state and the last render
func (h *LightServiceHandler) GetState(ctx context.Context, req *pb.GetStateRequest) (*pb.GetStateResponse, error) {
	log.Debug().Msg("GetState called")

	current := h.ctrl.Current()

	return &pb.GetStateResponse{
		SessionId: current.SessionID,
		State:     convertStateToProto(current.State),
		Render:    convertRenderToProto(current.Render),
	}, nil
}

// GetHistory returns journaled events within time range with statistics
func (h *LightServiceHandler) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	log.Info().
		Int64("start", req.StartTime).
		Int64("end", req.EndTime).
		Msg("GetHistory called")

	if h.journal == nil {
		return nil, status.Error(codes.Unavailable, "event journal disabled")
	}
	if req.EndTime < req.StartTime {
		return nil, status.Error(codes.InvalidArgument, "end_time before start_time")
	}

	start := time.Unix(req.StartTime, 0)
	end := time.Unix(req.EndTime, 0)

	events, err := h.journal.GetEventsInRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")
		return nil, status.Error(codes.Internal, "failed to get events")
	}

	rpcEvents := make([]*pb.Event, len(events))
	for i, e := range events {
		rpcEvents[i] = convertEventToProto(e)
	}

	stats := calculateStatistics(events)

	return &pb.GetHistoryResponse{
		Events:     rpcEvents,
		KindCounts: stats.kindCounts,
		TorchOnPct: stats.torchOnPct,
	}, nil
}

func convertOutcomeToProto(o ports.Outcome) *pb.TapResponse {
	return &pb.TapResponse{
		SessionId: o.SessionID,
		State:     convertStateToProto(o.State),
		Render:    convertRenderToProto(o.Render),
	}
}

func convertStateToProto(s domain.UIState) *pb.State {
	return &pb.State{
		Mode:               s.Mode.String(),
		IsScreenLightOn:    s.IsScreenLightOn,
		IsCameraLightOn:    s.IsCameraLightOn,
		TrafficLightsIndex: int32(s.TrafficLightsIndex),
	}
}

func convertRenderToProto(out domain.RenderInstructions) *pb.Render {
	buttons := make([]*pb.Button, len(out.Buttons))
	for i, b := range out.Buttons {
		buttons[i] = &pb.Button{
			Mode:     b.Mode.String(),
			Tint:     b.Tint.Hex(),
			Selected: b.Selected,
		}
	}

	return &pb.Render{
		Background: out.Background.Hex(),
		TorchOn:    bool(out.Torch),
		Buttons:    buttons,
	}
}

func convertEventToProto(e *domain.TapEvent) *pb.Event {
	ev := &pb.Event{
		Id:         e.ID,
		SessionId:  e.SessionID,
		Kind:       string(e.Kind),
		State:      convertStateToProto(e.State),
		Background: e.Background.Hex(),
		TorchOn:    e.TorchOn,
		Timestamp:  e.Timestamp.UnixNano(),
	}
	if e.Kind == domain.EventTapModeButton {
		ev.Target = e.Target.String()
	}
	return ev
}

// statistics holds calculated statistics
type statistics struct {
	kindCounts map[string]int32
	torchOnPct float64
}

// calculateStatistics counts events per kind and the share that left the torch on
func calculateStatistics(events []*domain.TapEvent) statistics {
	stats := statistics{kindCounts: make(map[string]int32)}
	if len(events) == 0 {
		return stats
	}

	var torchOn int
	for _, e := range events {
		stats.kindCounts[string(e.Kind)]++
		if e.TorchOn {
			torchOn++
		}
	}

	stats.torchOnPct = 100 * float64(torchOn) / float64(len(events))
	return stats
}
