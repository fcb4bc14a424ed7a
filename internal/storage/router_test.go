package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite
	router *Router
	cfg    *config.StorageConfig
}

func (s *RouterTestSuite) SetupTest() {
	s.cfg = &config.StorageConfig{
		RemoteEndpoint:  "", // remote backend disabled, local fallback only
		ContainerPrefix: "complyhub",
		LocalRoot:       s.T().TempDir(),
		Region:          "us-east-1",
	}
	s.router = NewRouter(s.cfg, logger.NewLogger("test"))
}

func (s *RouterTestSuite) tenantCtx(slug string) context.Context {
	tenant := &domain.Tenant{
		ID:   uuid.NewString(),
		Name: slug,
		Slug: slug,
	}
	return tenantctx.WithTenant(context.Background(), tenant)
}

func (s *RouterTestSuite) TestContainerDerivedFromTenant() {
	s.Equal("complyhub-acme", s.router.Container(s.tenantCtx("acme")))
}

func (s *RouterTestSuite) TestContainerFallsBackToShared() {
	s.Equal("complyhub-shared", s.router.Container(context.Background()))
}

func (s *RouterTestSuite) TestSaveDegradesToLocalWhenRemoteDisabled() {
	ctx := s.tenantCtx("acme")

	stored, err := s.router.Save(ctx, "evidence/report.pdf", []byte("pdf-bytes"))
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.cfg.LocalRoot, "complyhub-acme", "evidence", "report.pdf"), stored)

	data, err := s.router.Open(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.Equal([]byte("pdf-bytes"), data)

	exists, err := s.router.Exists(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.True(exists)

	size, err := s.router.Size(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.Equal(int64(len("pdf-bytes")), size)
}

func (s *RouterTestSuite) TestContainersIsolateTenants() {
	acme := s.tenantCtx("acme")
	globex := s.tenantCtx("globex")

	_, err := s.router.Save(acme, "evidence/report.pdf", []byte("acme-data"))
	s.Require().NoError(err)

	// Same logical path, different tenant: invisible.
	exists, err := s.router.Exists(globex, "evidence/report.pdf")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.router.Open(globex, "evidence/report.pdf")
	s.ErrorIs(err, ErrFileNotFound)

	_, err = s.router.Save(globex, "evidence/report.pdf", []byte("globex-data"))
	s.Require().NoError(err)

	data, err := s.router.Open(acme, "evidence/report.pdf")
	s.Require().NoError(err)
	s.Equal([]byte("acme-data"), data)
}

func (s *RouterTestSuite) TestTraversalPathsCannotCrossContainers() {
	acme := s.tenantCtx("acme")
	globex := s.tenantCtx("globex")

	_, err := s.router.Save(acme, "evidence/report.pdf", []byte("acme-data"))
	s.Require().NoError(err)

	// A relative path that climbs out of the container must not resolve
	// into the sibling tenant's tree.
	_, err = s.router.Open(globex, "../complyhub-acme/evidence/report.pdf")
	s.ErrorIs(err, ErrInvalidPath)

	exists, err := s.router.Exists(globex, "../complyhub-acme/evidence/report.pdf")
	s.ErrorIs(err, ErrInvalidPath)
	s.False(exists)

	_, err = s.router.Size(globex, "../complyhub-acme/evidence/report.pdf")
	s.ErrorIs(err, ErrInvalidPath)

	_, err = s.router.Save(globex, "../complyhub-acme/evidence/report.pdf", []byte("overwrite"))
	s.ErrorIs(err, ErrInvalidPath)

	s.ErrorIs(s.router.Delete(globex, "../complyhub-acme/evidence/report.pdf"), ErrInvalidPath)

	// The original file is untouched and still private to its owner.
	data, err := s.router.Open(acme, "evidence/report.pdf")
	s.Require().NoError(err)
	s.Equal([]byte("acme-data"), data)
}

func (s *RouterTestSuite) TestInvalidLogicalPaths() {
	ctx := s.tenantCtx("acme")

	for _, p := range []string{"", ".", "..", "../x", "/etc/passwd", "a/../../b"} {
		_, err := s.router.Save(ctx, p, []byte("x"))
		s.ErrorIs(err, ErrInvalidPath, "path %q", p)
	}

	// Internal dot segments that stay inside the container are fine.
	stored, err := s.router.Save(ctx, "evidence/./sub/../report.pdf", []byte("pdf-bytes"))
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.cfg.LocalRoot, "complyhub-acme", "evidence", "report.pdf"), stored)
}

func (s *RouterTestSuite) TestSaveDegradesToLocalWhenRemoteUnreachable() {
	// Remote configured but nothing listening: the reachability check
	// fails and every operation lands on the local tree.
	s.cfg.RemoteEndpoint = "http://127.0.0.1:1"
	s.cfg.AccessKeyID = "test"
	s.cfg.SecretAccessKey = "test"
	ctx := s.tenantCtx("acme")

	stored, err := s.router.Save(ctx, "evidence/report.pdf", []byte("pdf-bytes"))
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.cfg.LocalRoot, "complyhub-acme", "evidence", "report.pdf"), stored)

	exists, err := s.router.Exists(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.True(exists)

	data, err := s.router.Open(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.Equal([]byte("pdf-bytes"), data)
}

func (s *RouterTestSuite) TestOpenMissingFile() {
	_, err := s.router.Open(s.tenantCtx("acme"), "evidence/missing.pdf")
	s.ErrorIs(err, ErrFileNotFound)
}

func (s *RouterTestSuite) TestSizeMissingFile() {
	_, err := s.router.Size(s.tenantCtx("acme"), "evidence/missing.pdf")
	s.ErrorIs(err, ErrFileNotFound)
}

func (s *RouterTestSuite) TestDelete() {
	ctx := s.tenantCtx("acme")

	_, err := s.router.Save(ctx, "evidence/report.pdf", []byte("pdf-bytes"))
	s.Require().NoError(err)

	s.Require().NoError(s.router.Delete(ctx, "evidence/report.pdf"))

	exists, err := s.router.Exists(ctx, "evidence/report.pdf")
	s.Require().NoError(err)
	s.False(exists)

	s.ErrorIs(s.router.Delete(ctx, "evidence/report.pdf"), ErrFileNotFound)
}

func (s *RouterTestSuite) TestSharedContainerOutsideRequestScope() {
	_, err := s.router.Save(context.Background(), "archive/2026-08.json", []byte("{}"))
	s.Require().NoError(err)

	_, statErr := os.Stat(filepath.Join(s.cfg.LocalRoot, "complyhub-shared", "archive", "2026-08.json"))
	s.NoError(statErr)
}

func (s *RouterTestSuite) TestURLPathStyleWithEndpoint() {
	s.cfg.RemoteEndpoint = "http://localhost:4566"
	s.Equal("http://localhost:4566/complyhub-acme/evidence/report.pdf",
		s.router.URL(s.tenantCtx("acme"), "evidence/report.pdf"))
}

func (s *RouterTestSuite) TestURLVirtualHostWithoutEndpoint() {
	s.Equal("https://complyhub-acme.s3.us-east-1.amazonaws.com/evidence/report.pdf",
		s.router.URL(s.tenantCtx("acme"), "evidence/report.pdf"))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
