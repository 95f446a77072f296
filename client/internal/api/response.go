package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	clienterrors "github.com/mycelian/linkedin/client/internal/errors"
	"github.com/mycelian/linkedin/client/internal/transport"
	"github.com/mycelian/linkedin/client/internal/types"
)

// Interpret is the single place response statuses are judged. Statuses below
// 400 decode into a Result; anything else becomes a *RemoteAPIError.
func Interpret(op string, resp *transport.Response) (types.Result, error) {
	if resp.Status >= 400 {
		remoteErrorsTotal.WithLabelValues(op, strconv.Itoa(resp.Status)).Inc()
		return nil, remoteError(resp)
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, nil
	}
	result, err := decode(resp.Body)
	if err != nil {
		return nil, &clienterrors.DecodeError{Operation: op, StatusCode: resp.Status, Err: err}
	}
	return result, nil
}

func decode(body []byte) (types.Result, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out types.Result
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value at offset %d", dec.InputOffset())
	}
	return out, nil
}

func remoteError(resp *transport.Response) *clienterrors.RemoteAPIError {
	e := &clienterrors.RemoteAPIError{StatusCode: resp.Status}
	var body types.ErrorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		e.ErrorCode = body.ErrorCode
		e.Message = body.Message
		e.RequestID = body.RequestID
		return e
	}
	e.Message = strings.TrimSpace(string(resp.Body))
	return e
}
