package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/platewise/menu-extractor/gen/proto/menuextract/v1"
	"github.com/platewise/menu-extractor/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportMenu(ctx context.Context, req *v1.ExportMenuRequest) (*v1.ExportMenuResponse, error) {
	jid := strings.TrimSpace(req.GetJobId())
	jobID, err := uuid.Parse(jid)
	if err != nil || jid == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	xlsx, err := s.svc.ExportMenuXLSX(ctx, jobID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "job_id", jid, "err", err)
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &v1.ExportMenuResponse{Xlsx: xlsx}, nil
}
