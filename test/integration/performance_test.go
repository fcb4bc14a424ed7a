package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/complyhub/complyhub-api/internal/api"
	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
)

type mockEntitlementService struct {
	mock.Mock
}

func (m *mockEntitlementService) Summary(ctx context.Context, tenant *domain.Tenant) (*service.EntitlementSummary, error) {
	args := m.Called(ctx, tenant)
	return args.Get(0).(*service.EntitlementSummary), args.Error(1)
}

func (m *mockEntitlementService) Check(ctx context.Context, tenant *domain.Tenant, resource domain.ResourceType, requestedDelta int) (*service.CheckResult, error) {
	args := m.Called(ctx, tenant, resource, requestedDelta)
	return args.Get(0).(*service.CheckResult), args.Error(1)
}

func (m *mockEntitlementService) HasFeature(ctx context.Context, tenant *domain.Tenant, feature string) (bool, error) {
	args := m.Called(ctx, tenant, feature)
	return args.Bool(0), args.Error(1)
}

// bindTenant simulates the resolution middleware with a fixed tenant.
func bindTenant(tenant *domain.Tenant) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(tenantctx.WithTenant(c.Request.Context(), tenant))
		c.Next()
	}
}

func BenchmarkCheckEntitlement(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mockEntitlementService)
	handler := api.NewEntitlementHandler(mockService)

	tenant := &domain.Tenant{ID: "bench-tenant", Slug: "bench", Status: domain.TenantActive}

	router := gin.New()
	router.Use(bindTenant(tenant))
	router.POST("/entitlements/check", handler.CheckEntitlement)

	mockService.On("Check", mock.Anything, tenant, domain.ResourceDocuments, 1).Return(&service.CheckResult{
		Allowed:   true,
		Current:   400,
		Max:       1000,
		Remaining: 600,
	}, nil)

	payload := dto.CheckEntitlementRequest{ResourceType: "DOCUMENTS", Delta: 1}
	payloadBytes, _ := json.Marshal(payload)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/entitlements/check", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyEntitlementChecks exercises the check endpoint under
// high concurrent load.
func TestHighConcurrencyEntitlementChecks(t *testing.T) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mockEntitlementService)
	handler := api.NewEntitlementHandler(mockService)

	tenant := &domain.Tenant{ID: "load-tenant", Slug: "load", Status: domain.TenantActive}

	router := gin.New()
	router.Use(bindTenant(tenant))
	router.POST("/entitlements/check", handler.CheckEntitlement)

	// Mock service response with some latency simulation
	mockService.On("Check", mock.Anything, tenant, domain.ResourceSeats, 1).Return(&service.CheckResult{
		Allowed:   true,
		Current:   10,
		Max:       50,
		Remaining: 40,
	}, nil).Run(func(args mock.Arguments) {
		time.Sleep(1 * time.Millisecond) // Simulate a usage count read
	})

	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	payload := dto.CheckEntitlementRequest{ResourceType: "SEATS", Delta: 1}
	payloadBytes, _ := json.Marshal(payload)

	// Metrics
	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	// Launch concurrent requests
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("POST", "/entitlements/check", bytes.NewBuffer(payloadBytes))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusOK {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}

// TestCrossTenantIsolationUnderLoad binds a different tenant per request
// and verifies every response carries that tenant's numbers, never a
// neighbor's.
func TestCrossTenantIsolationUnderLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(mockEntitlementService)
	handler := api.NewEntitlementHandler(mockService)

	tenants := []*domain.Tenant{
		{ID: "t-acme", Slug: "acme", Status: domain.TenantActive},
		{ID: "t-globex", Slug: "globex", Status: domain.TenantActive},
	}
	limits := map[string]int{"t-acme": 50, "t-globex": 200}

	// Resolution decided per request by header, like the real middleware.
	router := gin.New()
	router.Use(func(c *gin.Context) {
		for _, tenant := range tenants {
			if tenant.Slug == c.GetHeader("X-Tenant-ID") {
				c.Request = c.Request.WithContext(tenantctx.WithTenant(c.Request.Context(), tenant))
				break
			}
		}
		c.Next()
	})
	router.POST("/entitlements/check", handler.CheckEntitlement)

	for _, tenant := range tenants {
		max := limits[tenant.ID]
		mockService.On("Check", mock.Anything, tenant, domain.ResourceSeats, 1).Return(&service.CheckResult{
			Allowed:   true,
			Current:   0,
			Max:       max,
			Remaining: max,
		}, nil)
	}

	payload, _ := json.Marshal(dto.CheckEntitlementRequest{ResourceType: "SEATS", Delta: 1})

	numGoroutines := 50
	requestsPerGoroutine := 20

	var wrongTenant int32
	var mutex sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		tenant := tenants[i%len(tenants)]
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				req, _ := http.NewRequest("POST", "/entitlements/check", bytes.NewBuffer(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-Tenant-ID", tenant.Slug)

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				var resp dto.CheckEntitlementResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Errorf("bad response body: %v", err)
					continue
				}

				if resp.Max != limits[tenant.ID] {
					mutex.Lock()
					wrongTenant++
					mutex.Unlock()
					t.Errorf("tenant %s saw limit %d, want %d", tenant.Slug, resp.Max, limits[tenant.ID])
				}
			}
		}()
	}

	wg.Wait()

	total := numGoroutines * requestsPerGoroutine
	t.Logf("=== Cross-Tenant Isolation Results ===")
	t.Logf("Total requests: %d", total)
	t.Logf("Responses with another tenant's limits: %d", wrongTenant)

	assert.Equal(t, int32(0), wrongTenant, fmt.Sprintf("all %d responses must carry the requesting tenant's limits", total))
}
