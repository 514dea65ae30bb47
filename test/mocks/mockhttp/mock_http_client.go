package mockhttp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MockHttpClient is a policy.Transporter implementation backed by a set of
// request expressions. Requests that match an expression receive its canned
// response; requests with no matching expression panic so that missing mocks
// fail tests loudly.
type MockHttpClient struct {
	expressions []*HttpExpression
}

type HttpExpression struct {
	http        *MockHttpClient
	predicateFn RequestPredicate
	response    *http.Response
	responseFn  RespondFn
	error       error
}

type RequestPredicate func(request *http.Request) bool
type RespondFn func(request *http.Request) (*http.Response, error)

func NewMockHttpClient() *MockHttpClient {
	return &MockHttpClient{
		expressions: []*HttpExpression{},
	}
}

func (c *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	var match *HttpExpression

	// Last registration wins so tests can override defaults
	for i := len(c.expressions) - 1; i >= 0; i-- {
		if c.expressions[i].predicateFn(req) {
			match = c.expressions[i]
			break
		}
	}

	if match == nil {
		panic(fmt.Sprintf("No mock found for request: '%s %s'", req.Method, req.URL))
	}

	if match.responseFn != nil {
		return match.responseFn(req)
	}

	if match.error != nil {
		return nil, match.error
	}

	response := *match.response
	response.Request = req

	return &response, nil
}

func (c *MockHttpClient) When(predicate RequestPredicate) *HttpExpression {
	expr := HttpExpression{
		http:        c,
		predicateFn: predicate,
	}

	c.expressions = append(c.expressions, &expr)
	return &expr
}

func (c *MockHttpClient) Reset() {
	c.expressions = []*HttpExpression{}
}

func (e *HttpExpression) Respond(response *http.Response) *MockHttpClient {
	e.response = response
	return e.http
}

func (e *HttpExpression) RespondFn(responseFn RespondFn) *MockHttpClient {
	e.responseFn = responseFn
	return e.http
}

func (e *HttpExpression) SetError(err error) *MockHttpClient {
	e.error = err
	return e.http
}

// CreateHttpResponseWithBody builds an http.Response with a JSON serialized body
func CreateHttpResponseWithBody[T any](statusCode int, body T) (*http.Response, error) {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed serializing response body: %w", err)
	}

	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewBuffer(jsonBytes)),
	}, nil
}

// CreateEmptyHttpResponse builds an http.Response with no body
func CreateEmptyHttpResponse(statusCode int) (*http.Response, error) {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       http.NoBody,
	}, nil
}

// CreateBinaryHttpResponse builds an http.Response with a raw byte body
func CreateBinaryHttpResponse(statusCode int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}
