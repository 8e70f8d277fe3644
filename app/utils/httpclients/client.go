package httpclients

import (
	"time"

	"resty.dev/v3"
)

func NewClient(name string) *resty.Client {
	client := resty.New()
	client.SetHeader("User-Agent", name)
	client.SetTimeout(60 * time.Second)
	return client
}
