package codec_test

import (
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("rest-json marshaller", func() {

	It("places members in the path, query, headers and body", func() {

		created := time.Date(2021, time.May, 4, 1, 2, 3, 0, time.UTC)

		request, err := codec.MarshalREST("apigateway", "UpdateRoute", "PATCH", "/v2/apis/{apiId}/routes/{routeId}",
			&testRoute{
				ApiId:               aws.String("a b"),
				RouteId:             aws.String("r1"),
				MaxResults:          aws.String("25"),
				TagKeys:             []*string{aws.String("k1"), nil, aws.String("k2")},
				ClientToken:         aws.String("token"),
				RouteKey:            aws.String("GET /pets"),
				ApiKeyRequired:      aws.Bool(true),
				TimeoutInMillis:     aws.Int32(500),
				AuthorizationScopes: []*string{},
				RequestModels:       map[string]*string{"application/json": aws.String("Pet")},
				Target:              &testTag{Key: aws.String("integrations/1")},
				CreatedDate:         &created,
			},
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Method).To(Equal("PATCH"))
		Expect(request.Path).To(Equal("/v2/apis/a%20b/routes/r1"))
		Expect(request.Query.Get("maxResults")).To(Equal("25"))
		Expect(request.Query["tagKeys"]).To(Equal([]string{"k1", "k2"}))
		Expect(request.Headers).To(HaveKeyWithValue("X-Client-Token", "token"))
		Expect(request.Headers).To(HaveKeyWithValue("Content-Type", "application/json"))

		var body map[string]interface{}
		Expect(json.Unmarshal(request.Body, &body)).To(Succeed())
		Expect(body).To(Equal(map[string]interface{}{
			"routeKey":            "GET /pets",
			"apiKeyRequired":      true,
			"timeoutInMillis":     float64(500),
			"authorizationScopes": []interface{}{},
			"requestModels":       map[string]interface{}{"application/json": "Pet"},
			"target":              map[string]interface{}{"Key": "integrations/1"},
			"createdDate":         "2021-05-04T01:02:03.000Z",
		}))
	})

	It("writes an empty json object when no body members are set", func() {

		request, err := codec.MarshalREST("apigateway", "DeleteRoute", "DELETE", "/v2/apis/{apiId}/routes/{routeId}",
			&testRoute{ApiId: aws.String("a1"), RouteId: aws.String("r1")},
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Path).To(Equal("/v2/apis/a1/routes/r1"))
		Expect(string(request.Body)).To(Equal("{}"))
		Expect(request.Query).To(BeEmpty())
	})

	It("fails when a uri member is missing or the request is nil", func() {

		_, err := codec.MarshalREST("apigateway", "GetRoute", "GET", "/v2/apis/{apiId}/routes/{routeId}",
			&testRoute{ApiId: aws.String("a1")},
		)
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("routeId is required"))

		var in *testRoute
		_, err = codec.MarshalREST("apigateway", "GetRoute", "GET", "/v2/apis/{apiId}", in)
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
	})
})
