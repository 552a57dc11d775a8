package transport

import "github.com/bytedance/sonic"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every planner response. Failures carry a machine code and a
// client-safe message; Data is set on success and on degraded health checks.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func Success(data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

func Failure(code, message string) Envelope {
	return Envelope{Status: StatusError, Code: code, Error: message}
}

// WithData attaches a payload, e.g. the stats behind a failed health check.
func (e Envelope) WithData(data interface{}) Envelope {
	e.Data = data
	return e
}

// String renders the envelope for log fields.
func (e Envelope) String() string {
	out, err := sonic.MarshalString(e)
	if err != nil {
		return "{}"
	}
	return out
}
