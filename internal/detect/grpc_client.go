package detect

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	pb "github.com/ashureev/examwatch/internal/proto/detector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
)

// GRPCDetector is a Detector backed by the external detector service.
type GRPCDetector struct {
	conn   *grpc.ClientConn
	client pb.DetectorServiceClient
	addr   string
	logger *slog.Logger

	requestTimeout time.Duration
	mimeType       string
}

// GRPCDetectorConfig holds configuration for the gRPC detector client.
type GRPCDetectorConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	RequestTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
	MimeType         string
}

// DefaultGRPCDetectorConfig returns default configuration.
func DefaultGRPCDetectorConfig() GRPCDetectorConfig {
	return GRPCDetectorConfig{
		Address:          "localhost:50061",
		ConnectTimeout:   5 * time.Second,
		RequestTimeout:   10 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
		MimeType:         "image/jpeg",
	}
}

// NewGRPCDetector connects to the detector service at addr. The connection
// attempt is forced during construction so a bad endpoint fails fast instead
// of on the first inference tick.
func NewGRPCDetector(addr string, logger *slog.Logger) (*GRPCDetector, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := DefaultGRPCDetectorConfig()
	if addr != "" {
		cfg.Address = addr
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to detector at %s: %w", cfg.Address, err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("detector at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("Connected to detector service", "address", cfg.Address)

	return &GRPCDetector{
		conn:           conn,
		client:         pb.NewDetectorServiceClient(conn),
		addr:           cfg.Address,
		logger:         logger,
		requestTimeout: cfg.RequestTimeout,
		mimeType:       cfg.MimeType,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Detect sends one encoded frame to the detector service and returns the
// labeled bounding boxes it found.
func (d *GRPCDetector) Detect(ctx context.Context, frame []byte) ([]Detection, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.requestTimeout)
	defer cancel()

	resp, err := d.client.Detect(callCtx, &pb.DetectRequest{
		Image:    frame,
		MimeType: d.mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("detect frame: %w", err)
	}

	dets := make([]Detection, 0, len(resp.GetDetections()))
	for _, pd := range resp.GetDetections() {
		det := Detection{
			Label:      pd.GetLabel(),
			Confidence: pd.GetConfidence(),
		}
		if box := pd.GetBox(); box != nil {
			det.Box = image.Rect(int(box.GetXMin()), int(box.GetYMin()), int(box.GetXMax()), int(box.GetYMax()))
		}
		dets = append(dets, det)
	}
	return dets, nil
}

// Close tears down the underlying gRPC connection.
func (d *GRPCDetector) Close() error {
	if err := d.conn.Close(); err != nil {
		return fmt.Errorf("close detector connection: %w", err)
	}
	return nil
}
