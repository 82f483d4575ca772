package mock

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/gorilla/mux"
	"k8s.io/apimachinery/pkg/util/wait"
)

const maxIngestMemory = 32 << 20

// IngestedFile is one file part of an ingest request.
type IngestedFile struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

type IngestedOutcome struct {
	ContentType string
	// RawTaskResult is the task_result field exactly as received.
	RawTaskResult string
	TaskResult    executorapi.TaskResult
	Files         []IngestedFile
}

// FailIngest makes the ingest endpoint answer with the given status and body.
// A zero status restores normal behaviour.
func (c *Controller) FailIngest(statusCode int, body string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.ingestStatus = statusCode
	c.ingestBody = body
}

func (c *Controller) Ingested() []*IngestedOutcome {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]*IngestedOutcome(nil), c.ingested...)
}

// WaitForIngested polls until at least n outcomes were ingested.
func (c *Controller) WaitForIngested(ctx context.Context, n int) ([]*IngestedOutcome, error) {
	var ret []*IngestedOutcome
	err := wait.PollImmediateUntil(10*time.Millisecond, func() (bool, error) {
		ret = c.Ingested()
		return len(ret) >= n, nil
	}, ctx.Done())
	return ret, err
}

// Router serves the controller's HTTP surface.
func (c *Controller) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(executorapi.IngestFilesPath, c.ingestFiles).Methods(http.MethodPost)
	r.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Success\n"))
	}).Methods(http.MethodGet)
	return r
}

func (c *Controller) ingestFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.lock.Lock()
	statusCode, body := c.ingestStatus, c.ingestBody
	c.lock.Unlock()
	if statusCode != 0 {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
		return
	}

	if err := r.ParseMultipartForm(maxIngestMemory); err != nil {
		logger.G(ctx).WithError(err).Warn("Rejecting ingest request that is not multipart")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ingested := &IngestedOutcome{
		ContentType:   r.Header.Get("Content-Type"),
		RawTaskResult: r.FormValue(executorapi.TaskResultField),
	}
	if err := json.Unmarshal([]byte(ingested.RawTaskResult), &ingested.TaskResult); err != nil {
		http.Error(w, "invalid task_result: "+err.Error(), http.StatusBadRequest)
		return
	}

	for _, field := range []string{executorapi.NodeOutputsField, executorapi.StdoutField, executorapi.StderrField} {
		for _, fh := range r.MultipartForm.File[field] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data, err := ioutil.ReadAll(f)
			_ = f.Close()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			ingested.Files = append(ingested.Files, IngestedFile{
				Field:       field,
				FileName:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	c.lock.Lock()
	c.ingested = append(c.ingested, ingested)
	c.lock.Unlock()
	logger.G(ctx).WithField(logger.TaskIDField, ingested.TaskResult.GetTaskID()).WithField("files", len(ingested.Files)).Info("Ingested task outcome")
	w.WriteHeader(http.StatusOK)
}
