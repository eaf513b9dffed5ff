package object

import "net/http"

type Request struct {
	Bucket string `json:"bucket" validate:"required"`
	Key    string `json:"key" validate:"required"`
}

type Response struct {
	ResponseCode int    `json:"response_code"`
	Data         string `json:"data"`
}

// NewResponse wraps a fetched payload in the success envelope.
func NewResponse(payload []byte) *Response {
	return &Response{
		ResponseCode: http.StatusOK,
		Data:         BytesLiteral(payload),
	}
}
