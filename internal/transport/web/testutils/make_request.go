package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

type RequestOptions struct {
	headers map[string]string
	form    url.Values
	cookies []*http.Cookie
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	body := args.Body
	// форма заменяет тело запроса.
	if options.form != nil {
		body = strings.NewReader(options.form.Encode())
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	if options.form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}
	for _, cookie := range options.cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithForm отправляет values как application/x-www-form-urlencoded.
func WithForm(values url.Values) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.form = values
	}
}

func WithCookies(c ...*http.Cookie) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.cookies = append(fn.cookies, c...)
	}
}
