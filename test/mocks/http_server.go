package mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"sync"

	"github.com/kr/pretty"

	"github.com/mevansam/awsapi/logger"
)

// MockHttpServer replies to requests in the order their
// expectations were pushed. A request that does not match its
// expectation is answered with status 418 and the mismatch is
// recorded.
type MockHttpServer struct {
	server     *http.Server
	listener   net.Listener
	serverExit sync.WaitGroup

	mx sync.Mutex

	expectCommonHeaders []header
	expectRequests      []*request

	mismatches []string
}

type request struct {
	expectMethod    *string
	expectPath      *string
	expectQueryArgs []header
	expectHeaders   []header
	expectPresent   []string

	expectFormParams  map[string]string
	expectJSONRequest interface{}
	expectRequestBody *string

	callback CallbackTest

	responseHeaders []header
	responseBody    *string
	httpCode        int
}

// CallbackTest handles a request in place of the canned
// response. If it returns a body it is written with status 200.
type CallbackTest func(w http.ResponseWriter, r *http.Request, body string) *string

type header struct {
	name, value string
}

// NewMockHttpServer creates a server listening on the given
// port of the loopback interface. A port of 0 selects a free
// port.
func NewMockHttpServer(port int) *MockHttpServer {

	ms := MockHttpServer{}
	serveMux := http.NewServeMux()
	serveMux.HandleFunc("/", ms.MockResponseReflector)

	ms.server = &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: serveMux,
	}

	return &ms
}

func (ms *MockHttpServer) Start() {

	var err error

	if ms.listener, err = net.Listen("tcp", ms.server.Addr); err != nil {
		// unexpected error. port in use?
		log.Fatalf("MockServer.Start(): %v", err)
	}

	ms.serverExit.Add(1)
	go func() {
		defer ms.serverExit.Done() // let caller know we are done cleaning up

		// always returns error. ErrServerClosed on graceful close
		if err := ms.server.Serve(ms.listener); err != http.ErrServerClosed {
			log.Fatalf("MockServer.Start(): %v", err)
		}
	}()
}

func (ms *MockHttpServer) Stop() {
	if err := ms.server.Shutdown(context.Background()); err != nil {
		log.Fatalf("MockServer.Stop(): %v", err)
	}
	ms.serverExit.Wait()
}

// URL returns the base url of the started server.
func (ms *MockHttpServer) URL() string {
	return "http://" + ms.listener.Addr().String()
}

func (ms *MockHttpServer) ExpectCommonHeader(name, value string) {
	ms.expectCommonHeaders = append(ms.expectCommonHeaders, header{name, value})
}

func (ms *MockHttpServer) PushRequest() *request {
	ms.mx.Lock()
	defer ms.mx.Unlock()

	request := &request{httpCode: http.StatusOK}
	ms.expectRequests = append(ms.expectRequests, request)
	return request
}

// PendingRequests returns the number of expected requests
// that have not been received.
func (ms *MockHttpServer) PendingRequests() int {
	ms.mx.Lock()
	defer ms.mx.Unlock()
	return len(ms.expectRequests)
}

// Mismatches returns the reasons requests were rejected.
func (ms *MockHttpServer) Mismatches() []string {
	ms.mx.Lock()
	defer ms.mx.Unlock()
	return append([]string{}, ms.mismatches...)
}

func (ms *MockHttpServer) MockResponseReflector(w http.ResponseWriter, r *http.Request) {

	var (
		err error

		buffer      bytes.Buffer
		size        int64
		requestBody string
	)

	ms.mx.Lock()
	defer ms.mx.Unlock()

	logger.TraceMessage("MockServer: request URI: %s", r.RequestURI)
	logger.TraceMessage("MockServer: request Headers: %s", r.Header)

	mismatch := func(format string, args ...interface{}) {
		message := fmt.Sprintf(format, args...)
		ms.mismatches = append(ms.mismatches, message)
		if debug {
			fmt.Printf("MockServer: %s\n", message)
		}
		http.Error(w, message, http.StatusTeapot)
	}

	if size, err = buffer.ReadFrom(r.Body); err != nil {
		mismatch("Error reading request body: %s", err.Error())
		return
	}
	requestBody = buffer.String()
	logger.TraceMessage("MockServer: request Body (%d): %s", size, requestBody)

	// expected request
	if len(ms.expectRequests) == 0 {
		mismatch("Error expected request stack is empty")
		return
	}
	expectedRequest := ms.expectRequests[0]
	ms.expectRequests = ms.expectRequests[1:]

	if expectedRequest.expectMethod != nil && *expectedRequest.expectMethod != r.Method {
		mismatch("Error expected method '%s' but got '%s'", *expectedRequest.expectMethod, r.Method)
		return
	}
	if expectedRequest.expectPath != nil && *expectedRequest.expectPath != r.URL.EscapedPath() {
		mismatch("Error expected path '%s' but got '%s'", *expectedRequest.expectPath, r.URL.EscapedPath())
		return
	}

	query := r.URL.Query()
	for _, arg := range expectedRequest.expectQueryArgs {
		if values, exists := query[arg.name]; !exists || !contains(values, arg.value) {
			mismatch("Error expected query arg %s=%s in '%s'", arg.name, arg.value, r.URL.RawQuery)
			return
		}
	}

	// check expected headers
	checkHeaders := func(expectedHeaders []header) bool {
		for _, header := range expectedHeaders {
			value := r.Header.Get(header.name)
			if len(value) == 0 {
				mismatch("Error expected header is missing: %s", header.name)
				return true
			}
			if value != header.value {
				mismatch(
					"Error expected header '%s' value does not match: expected '%s', got '%s'",
					header.name, header.value, value,
				)
				return true
			}
		}
		return false
	}
	// common headers
	if checkHeaders(ms.expectCommonHeaders) {
		return
	}
	// request headers
	if checkHeaders(expectedRequest.expectHeaders) {
		return
	}
	for _, name := range expectedRequest.expectPresent {
		if len(r.Header.Get(name)) == 0 {
			mismatch("Error expected header is missing: %s", name)
			return
		}
	}

	// check expected request body
	switch {
	case expectedRequest.expectFormParams != nil:
		var values url.Values
		if values, err = url.ParseQuery(requestBody); err != nil {
			mismatch("Error parsing form request body '%s': %s", requestBody, err.Error())
			return
		}
		actual := make(map[string]string)
		for n, v := range values {
			actual[n] = v[0]
		}
		if !reflect.DeepEqual(expectedRequest.expectFormParams, actual) {
			mismatch(
				"Error form parameters: %s",
				pretty.Diff(expectedRequest.expectFormParams, actual),
			)
			return
		}

	case expectedRequest.expectJSONRequest != nil:
		var actual interface{}
		if err = json.Unmarshal([]byte(requestBody), &actual); err != nil {
			mismatch("Error parsing JSON request body '%s': %s", requestBody, err.Error())
			return
		}
		if !reflect.DeepEqual(expectedRequest.expectJSONRequest, actual) {
			mismatch(
				"Error request body: expected '%v', got '%v'",
				expectedRequest.expectJSONRequest, actual,
			)
			return
		}

	case expectedRequest.expectRequestBody != nil:
		if *expectedRequest.expectRequestBody != requestBody {
			mismatch(
				"Error request body: expected '%s', got '%s'",
				*expectedRequest.expectRequestBody, requestBody,
			)
			return
		}
	}

	if expectedRequest.callback != nil {
		if body := expectedRequest.callback(w, r, requestBody); body != nil {
			_, _ = w.Write([]byte(*body))
		}
		return
	}

	// return response
	for _, h := range expectedRequest.responseHeaders {
		w.Header().Set(h.name, h.value)
	}
	w.WriteHeader(expectedRequest.httpCode)
	if expectedRequest.responseBody != nil {
		if _, err = w.Write([]byte(*expectedRequest.responseBody)); err != nil {
			logger.DebugMessage("MockServer: unable to return response: %s", err.Error())
		}
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func (r *request) ExpectMethod(method string) *request {
	r.expectMethod = &method
	return r
}

func (r *request) ExpectPath(path string) *request {
	r.expectPath = &path
	return r
}

func (r *request) ExpectQueryArg(name, value string) *request {
	r.expectQueryArgs = append(r.expectQueryArgs, header{name, value})
	return r
}

func (r *request) ExpectHeader(name, value string) *request {
	r.expectHeaders = append(r.expectHeaders, header{name, value})
	return r
}

// ExpectHeaderPresent expects a header with any non-empty value.
func (r *request) ExpectHeaderPresent(name string) *request {
	r.expectPresent = append(r.expectPresent, name)
	return r
}

// ExpectFormParams expects a form encoded body with exactly
// the given parameters.
func (r *request) ExpectFormParams(params map[string]string) *request {
	r.expectFormParams = params
	return r
}

func (r *request) ExpectJSONRequest(body string) *request {

	var expected interface{}
	if err := json.Unmarshal([]byte(body), &expected); err != nil {
		log.Fatalf("Error parsing JSON request '%s': %s", body, err.Error())
	}

	r.expectJSONRequest = expected
	return r
}

func (r *request) ExpectRequest(body string) *request {
	r.expectRequestBody = &body
	return r
}

func (r *request) WithCallbackTest(callback CallbackTest) *request {
	r.callback = callback
	return r
}

func (r *request) RespondWithHeader(name, value string) *request {
	r.responseHeaders = append(r.responseHeaders, header{name, value})
	return r
}

func (r *request) RespondWith(body string) *request {
	r.responseBody = &body
	return r
}

func (r *request) RespondWithError(body string, code int) *request {
	r.responseBody = &body
	r.httpCode = code
	return r
}
