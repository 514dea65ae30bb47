// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azsdk

import (
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const userAgentHeaderName = "User-Agent"

type userAgentPolicy struct {
	userAgent string
}

// NewUserAgentPolicy creates a policy that prepends the specified user agent
// to the User-Agent header of all HTTP requests.
func NewUserAgentPolicy(userAgent string) policy.Policy {
	return &userAgentPolicy{
		userAgent: userAgent,
	}
}

// Sets the custom user-agent string on the underlying request
func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	if strings.TrimSpace(p.userAgent) != "" {
		rawRequest := req.Raw()

		current := rawRequest.Header.Get(userAgentHeaderName)
		if current == "" {
			rawRequest.Header.Set(userAgentHeaderName, p.userAgent)
		} else {
			rawRequest.Header.Set(userAgentHeaderName, p.userAgent+" "+current)
		}
	}

	return req.Next()
}
