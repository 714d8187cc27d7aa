package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyRequest is returned when a request is blank.
var ErrEmptyRequest = errors.New("request is empty")

// readRequest joins args into a request. A single "-" reads the request from in.
func readRequest(args []string, in io.Reader) (string, error) {
	var request string
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading request: %w", err)
		}
		request = string(data)
	} else {
		request = strings.Join(args, " ")
	}

	request = strings.TrimSpace(request)
	if request == "" {
		return "", ErrEmptyRequest
	}
	return request, nil
}
