package agent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetwatch/fleetwatch/models"
)

func TestSenderPostsReport(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer ts.Close()

	sender := NewSender(ts.URL, 5*time.Second)

	report := &models.HostReport{
		Hostname:       "agent-host",
		IP:             "192.168.1.30",
		Disks:          []models.DiskInfo{},
		Processes:      []string{"sshd"},
		OSName:         "Ubuntu",
		OSVersion:      "24.04",
		OSKernel:       "6.8.0",
		OSArchitecture: "x86_64",
		CPUModel:       "TestCPU",
	}

	require.NoError(t, sender.Send(context.Background(), report))

	assert.Equal(t, "/hosts", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	var decoded models.HostReport
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "agent-host", decoded.Hostname)
	assert.Equal(t, "192.168.1.30", decoded.IP)

	// No GPU was probed; the payload must omit the optional fields.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &raw))
	assert.NotContains(t, raw, "gpu_usage")
	assert.NotContains(t, raw, "gpu_model")
}

func TestSenderTrailingSlash(t *testing.T) {
	sender := NewSender("http://collector:8080/", time.Second)
	assert.Equal(t, "http://collector:8080/hosts", sender.reportURL)
}

func TestSenderSurfacesRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"valid":false,"errors":[{"field":"ip","message":"Missing required field"}]}`))
	}))
	defer ts.Close()

	sender := NewSender(ts.URL, 5*time.Second)

	err := sender.Send(context.Background(), &models.HostReport{IP: "10.0.0.9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Missing required field")
}
