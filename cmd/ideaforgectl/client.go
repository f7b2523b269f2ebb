package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// newClient builds a resty client against the configured base URL. The
// long timeout covers generation-backed endpoints.
func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(apiFlag).
		SetTimeout(120 * time.Second).
		SetHeader("Content-Type", "application/json")
	if tokenFlag != "" {
		c.SetAuthToken(tokenFlag)
	}
	return c
}

// checkStatus converts non-2xx replies into errors carrying the body.
func checkStatus(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func doGet(path string) ([]byte, error) {
	resp, err := newClient().R().Get(path)
	return checkStatus(resp, err)
}

func doPostJSON(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().SetBody(payload).Post(path)
	return checkStatus(resp, err)
}

func doPutJSON(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().SetBody(payload).Put(path)
	return checkStatus(resp, err)
}

func doDelete(path string) ([]byte, error) {
	resp, err := newClient().R().Delete(path)
	return checkStatus(resp, err)
}
