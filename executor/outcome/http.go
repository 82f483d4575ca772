package outcome

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/tracehelpers"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultReadTimeout    = 5 * time.Minute

	maxErrorBody = 64 << 10
)

type HTTPConfig struct {
	// BaseURL of the controller, without the ingest path.
	BaseURL    string
	ExecutorID string
	// ConnectTimeout bounds connecting and every write.
	ConnectTimeout time.Duration
	// ReadTimeout bounds waiting for, and every read of, the response.
	ReadTimeout time.Duration
}

// HTTPReporter uploads outcomes as one multipart/form-data POST to the ingest endpoint.
type HTTPReporter struct {
	config   HTTPConfig
	client   *http.Client
	metrics  metrics.Reporter
	partName func() string
}

func NewHTTPReporter(cfg HTTPConfig, m metrics.Reporter) *HTTPReporter {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	return &HTTPReporter{
		config: cfg,
		client: &http.Client{
			Transport: &ochttp.Transport{Base: newTransport(cfg)},
		},
		metrics:  m,
		partName: func() string { return uuid.New().String() },
	}
}

func newTransport(cfg HTTPConfig) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return &deadlineConn{Conn: conn, readTimeout: cfg.ReadTimeout, writeTimeout: cfg.ConnectTimeout}, nil
		},
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		ExpectContinueTimeout: time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConnsPerHost:   4,
	}
}

// deadlineConn pushes the deadline forward before every read and write, so a
// large upload only fails when a single operation stalls.
type deadlineConn struct {
	net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (c *deadlineConn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

func (c *deadlineConn) Write(b []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Write(b)
}

// encode writes the envelope field followed by one file part per payload. The
// result is multipart even when there are no file parts.
func (r *HTTPReporter) encode(task *CompletedTask) (*bytes.Buffer, string, Summary, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	envelope, err := json.Marshal(Envelope(r.config.ExecutorID, task))
	if err != nil {
		return nil, "", Summary{}, errors.Wrap(err, "cannot encode task result")
	}
	if err = w.WriteField(executorapi.TaskResultField, string(envelope)); err != nil {
		return nil, "", Summary{}, err
	}

	fileParts, summary := parts(task)
	for _, p := range fileParts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, p.field, r.partName()))
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", Summary{}, err
		}
		if _, err = pw.Write(p.data); err != nil {
			return nil, "", Summary{}, err
		}
	}
	if err = w.Close(); err != nil {
		return nil, "", Summary{}, err
	}
	return body, w.FormDataContentType(), summary, nil
}

func (r *HTTPReporter) Report(ctx context.Context, task *CompletedTask) (retErr error) {
	ctx, span := trace.StartSpan(ctx, "reportTaskOutcome")
	defer span.End()
	defer func() {
		tracehelpers.SetStatus(retErr, span)
		result := "success"
		if retErr != nil {
			result = "failure"
		}
		r.metrics.Counter(reportMetric, 1, map[string]string{"result": result, "transport": "http"})
	}()

	taskID := task.Task.GetId()
	ctx = logger.WithField(ctx, logger.TaskIDField, taskID)
	span.AddAttributes(trace.StringAttribute("taskID", taskID), trace.Int64Attribute("retries", int64(task.ReportingRetries)))

	body, contentType, summary, err := r.encode(task)
	if err != nil {
		return err
	}
	logger.G(ctx).WithFields(map[string]interface{}{
		"retries":      task.ReportingRetries,
		"total_bytes":  summary.TotalBytes(),
		"total_files":  summary.TotalFiles(),
		"output_files": summary.OutputCount,
		"output_bytes": summary.OutputBytes,
		"stdout_bytes": summary.StdoutBytes,
		"stderr_bytes": summary.StderrBytes,
	}).Info("Reporting task outcome")
	r.metrics.Counter(reportBytesMetric, summary.TotalBytes(), nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.config.BaseURL+executorapi.IngestFilesPath, body)
	if err != nil {
		return errors.Wrap(err, "Unable to create new request")
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := r.client.Do(req)
	r.metrics.Timer(reportLatencyMetric, time.Since(start), map[string]string{"transport": "http"})
	if err != nil {
		logger.G(ctx).WithError(err).WithField("retries", task.ReportingRetries).Error("Failed to report task outcome")
		return errors.Wrap(err, "Unable to do request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		return nil
	}

	respBody, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	uploadErr := &UploadError{StatusCode: resp.StatusCode, Body: string(respBody)}
	logger.G(ctx).WithFields(map[string]interface{}{
		"retries":       task.ReportingRetries,
		"status_code":   resp.StatusCode,
		"response_text": uploadErr.Body,
	}).Error("Failed to report task outcome")
	return classify(uploadErr)
}
