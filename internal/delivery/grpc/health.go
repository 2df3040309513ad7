package grpc

import (
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name load balancers probe in addition to "".
const ServiceName = "familyshapes.Portal"

// HealthServer exposes the standard gRPC health protocol for the portal.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	log    *logrus.Logger
}

func NewHealthServer(logger *logrus.Logger) *HealthServer {
	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)

	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{server: s, health: h, log: logger}
}

// Serve blocks until the listener is closed or Stop is called.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Infof("gRPC health server listening on %s", lis.Addr())
	if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	s.log.Infof("gRPC health status set to %s", status)
}

func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.log.Info("gRPC server gracefully stopped.")
}
