package codec_test

import (
	"strings"
	"time"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("json shape unmarshaller", func() {

	It("populates a shape from a json response body", func() {

		result := &testGetRoutesResult{}
		err := codec.UnmarshalJSON(strings.NewReader(getRoutesResponse), result)
		Expect(err).ToNot(HaveOccurred())

		Expect(*result.NextToken).To(Equal("next-1"))
		Expect(result.Items).To(HaveLen(2))

		r := result.Items[0]
		Expect(*r.RouteId).To(Equal("r1"))
		Expect(*r.RouteKey).To(Equal("GET /pets"))
		Expect(*r.ApiKeyRequired).To(BeFalse())
		Expect(*r.TimeoutInMillis).To(Equal(int32(29000)))
		Expect(*r.RateLimit).To(Equal(12.5))
		Expect(r.AuthorizationScopes).To(HaveLen(3))
		Expect(*r.AuthorizationScopes[0]).To(Equal("read"))
		Expect(r.AuthorizationScopes[1]).To(BeNil())
		Expect(*r.AuthorizationScopes[2]).To(Equal("write"))
		Expect(r.RequestModels).To(HaveLen(1))
		Expect(*r.RequestModels["application/json"]).To(Equal("PetModel"))
		Expect(*r.Target.Key).To(Equal("integrations/abc"))
		Expect(*r.CreatedDate).To(BeTemporally("==", time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)))

		r = result.Items[1]
		Expect(*r.RouteId).To(Equal("r2"))
		Expect(r.RouteKey).To(BeNil())
		Expect(r.AuthorizationScopes).ToNot(BeNil())
		Expect(r.AuthorizationScopes).To(BeEmpty())
		Expect(r.Target).To(BeNil())
	})

	It("fails with a deserialization error for mismatched value types", func() {

		err := codec.UnmarshalJSON(strings.NewReader(`{"items": [{"timeoutInMillis": "soon"}]}`), &testGetRoutesResult{})
		Expect(awserr.IsDeserialization(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("items.@0.timeoutInMillis"))

		err = codec.UnmarshalJSON(strings.NewReader(`{"items": {"a": 1}}`), &testGetRoutesResult{})
		Expect(awserr.IsDeserialization(err)).To(BeTrue())

		err = codec.UnmarshalJSON(strings.NewReader(`{"items": [{"routeId": "r1"}`), &testGetRoutesResult{})
		Expect(awserr.IsDeserialization(err)).To(BeTrue())
	})

	It("fails with a deserialization error for content after the document", func() {

		for _, body := range []string{`{"name":"a"}{"name":"b"}`, `{"name":"a"} "x"`, `{} []`} {
			err := codec.UnmarshalJSON(strings.NewReader(body), &testGetRoutesResult{})
			Expect(awserr.IsDeserialization(err)).To(BeTrue(), body)

			_, err = codec.UnmarshalJSONMap(strings.NewReader(body))
			Expect(awserr.IsDeserialization(err)).To(BeTrue(), body)
		}
	})

	It("parses an untyped json object", func() {

		m, err := codec.UnmarshalJSONMap(strings.NewReader(`{"message": "not found", "__type": "NotFoundException", "detail": {"a": [1]}}`))
		Expect(err).ToNot(HaveOccurred())
		Expect(m.String("message")).To(Equal("not found"))
		Expect(m.String("__type")).To(Equal("NotFoundException"))
		Expect(m.String("detail")).To(BeEmpty())
		Expect(m.String("missing")).To(BeEmpty())
	})
})

const getRoutesResponse = `{
	"items": [
		{
			"routeId": "r1",
			"routeKey": "GET /pets",
			"apiKeyRequired": false,
			"timeoutInMillis": 29000,
			"rateLimit": 12.5,
			"authorizationScopes": ["read", null, "write"],
			"requestModels": {"application/json": "PetModel"},
			"target": {"Key": "integrations/abc", "Other": [1, {"x": 2}]},
			"createdDate": "2020-01-02T03:04:05Z",
			"newMember": {"nested": [[1, 2], {"deep": true}]}
		},
		{
			"routeId": "r2",
			"routeKey": null,
			"authorizationScopes": [],
			"target": null
		}
	],
	"nextToken": "next-1"
}`
