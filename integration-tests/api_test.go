package integration_tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"longshort/api"
	"longshort/internal/app"
	l1_service "longshort/internal/service/l1"
	l2_service "longshort/internal/service/l2"
	l3_service "longshort/internal/service/l3"
)

func newTestServer(t *testing.T) *httptest.Server {
	marketData := l1_service.NewCSVMarketData("testdata")
	factorService := l2_service.NewFactorService(marketData)
	rebalanceService, err := l3_service.NewRebalanceService(strategyConfig(), factorService, marketData, marketData)
	require.NoError(t, err)

	apiHandler := api.ApiHandler{
		Rebalancer: &app.RebalancerHandler{
			RebalanceService: rebalanceService,
		},
	}

	server := httptest.NewServer(apiHandler.InitializeRouterEngine())
	t.Cleanup(server.Close)
	return server
}

func postJson(t *testing.T, url string, body map[string]string) (int, map[string]interface{}) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	response, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer response.Body.Close()

	contents, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(contents, &out))
	return response.StatusCode, out
}

func TestApi(t *testing.T) {
	t.Run("rebalance endpoint returns weights", func(t *testing.T) {
		server := newTestServer(t)

		code, body := postJson(t, server.URL+"/rebalance", map[string]string{
			"date": "2025-03-03",
		})
		require.Equal(t, http.StatusOK, code)

		require.Equal(t, "value_test", body["strategy"])
		require.Equal(t, "2025-03-03", body["date"])
		weights, ok := body["weights"].(map[string]interface{})
		require.True(t, ok)
		require.NotEmpty(t, weights)
	})

	t.Run("diagnostics reflect the latest run", func(t *testing.T) {
		server := newTestServer(t)

		code, _ := postJson(t, server.URL+"/rebalance", map[string]string{
			"date": "2025-03-03",
		})
		require.Equal(t, http.StatusOK, code)

		response, err := http.Get(server.URL + "/diagnostics")
		require.NoError(t, err)
		defer response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)

		contents, err := io.ReadAll(response.Body)
		require.NoError(t, err)
		body := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(contents, &body))

		require.ElementsMatch(t, []interface{}{"ALFA", "BRVO"}, body["longs"])
		require.ElementsMatch(t, []interface{}{"GOLF", "HOTL"}, body["shorts"])
	})

	t.Run("diagnostics before any run is 404", func(t *testing.T) {
		server := newTestServer(t)

		response, err := http.Get(server.URL + "/diagnostics")
		require.NoError(t, err)
		defer response.Body.Close()
		require.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("malformed date is a 400", func(t *testing.T) {
		server := newTestServer(t)

		code, _ := postJson(t, server.URL+"/rebalance", map[string]string{
			"date": "03/03/2025",
		})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("date without data is a 422", func(t *testing.T) {
		server := newTestServer(t)

		code, body := postJson(t, server.URL+"/rebalance", map[string]string{
			"date": "1999-01-01",
		})
		require.Equal(t, http.StatusUnprocessableEntity, code)
		require.Contains(t, body["error"], "missing data")
	})
}
