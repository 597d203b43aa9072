package codec_test

import (
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("query marshaller", func() {

	It("flattens scalars and lists into indexed member keys", func() {

		request, err := codec.MarshalQuery("elasticloadbalancing", "CreateLoadBalancer", "2012-06-01",
			&testCreateRequest{
				LoadBalancerName: aws.String("prod-lb"),
				Subnets:          []*string{aws.String("subnet-1"), aws.String("subnet-2")},
			},
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Params).To(Equal(codec.Params{
			"Action":           "CreateLoadBalancer",
			"Version":          "2012-06-01",
			"LoadBalancerName": "prod-lb",
			"Subnets.member.1": "subnet-1",
			"Subnets.member.2": "subnet-2",
		}))
		Expect(request.Operation).To(Equal("CreateLoadBalancer"))
		Expect(request.ServiceName).To(Equal("elasticloadbalancing"))
		Expect(request.Method).To(Equal("POST"))
	})

	It("recurses into nested shapes and lists of shapes", func() {

		created := time.Date(2020, time.March, 1, 10, 4, 5, 7000000, time.FixedZone("EST", -5*3600))

		in := &testCreateRequest{
			Listeners: []*testListener{
				{Protocol: aws.String("HTTP"), LoadBalancerPort: aws.Int32(80), InstancePort: aws.Int32(8080)},
				{Protocol: aws.String("HTTPS"), LoadBalancerPort: aws.Int32(443)},
			},
			HealthCheck: &testHealthCheck{
				Target:   aws.String("HTTP:80/"),
				Interval: aws.Int32(30),
			},
			Tags: []*testTag{
				{Key: aws.String("env"), Value: aws.String("prod")},
			},
			CrossZone:    aws.Bool(false),
			MaxRecords:   aws.Int64(-9000000000),
			Weight:       aws.Float64(0.25),
			CreatedAfter: &created,
			Attributes: map[string]*string{
				"b": aws.String("2"),
				"a": aws.String("1"),
			},
		}
		request, err := codec.MarshalQuery("elasticloadbalancing", "CreateLoadBalancer", "2012-06-01", in)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Params).To(Equal(codec.Params{
			"Action":                               "CreateLoadBalancer",
			"Version":                              "2012-06-01",
			"Listeners.member.1.Protocol":           "HTTP",
			"Listeners.member.1.LoadBalancerPort":   "80",
			"Listeners.member.1.InstancePort":       "8080",
			"Listeners.member.2.Protocol":           "HTTPS",
			"Listeners.member.2.LoadBalancerPort":   "443",
			"HealthCheck.Target":                   "HTTP:80/",
			"HealthCheck.Interval":                 "30",
			"Tags.member.1.Key":                    "env",
			"Tags.member.1.Value":                  "prod",
			"CrossZone":                            "false",
			"MaxRecords":                           "-9000000000",
			"Weight":                               "0.25",
			"CreatedAfter":                         "2020-03-01T15:04:05.007Z",
			"Attributes.entry.1.key":               "a",
			"Attributes.entry.1.value":             "1",
			"Attributes.entry.2.key":               "b",
			"Attributes.entry.2.value":             "2",
		}))
		Expect(request.Original).To(BeIdenticalTo(in))
	})

	It("skips nil list elements but keeps their position", func() {

		request, err := codec.MarshalQuery("elasticloadbalancing", "AttachLoadBalancerToSubnets", "2012-06-01",
			&testCreateRequest{
				Subnets: []*string{aws.String("subnet-1"), nil, aws.String("subnet-3")},
				Tags:    []*testTag{nil, {Key: aws.String("k")}},
			},
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Params).To(HaveKeyWithValue("Subnets.member.1", "subnet-1"))
		Expect(request.Params).ToNot(HaveKey("Subnets.member.2"))
		Expect(request.Params).To(HaveKeyWithValue("Subnets.member.3", "subnet-3"))
		Expect(request.Params).ToNot(HaveKey("Tags.member.1.Key"))
		Expect(request.Params).To(HaveKeyWithValue("Tags.member.2.Key", "k"))
		Expect(request.Params).ToNot(HaveKey("Tags.member.2.Value"))
	})

	It("writes nothing for nil or empty lists and unset fields", func() {

		request, err := codec.MarshalQuery("elasticloadbalancing", "DescribeLoadBalancers", "2012-06-01",
			&testCreateRequest{Subnets: []*string{}},
		)
		Expect(err).ToNot(HaveOccurred())
		Expect(request.Params).To(Equal(codec.Params{
			"Action":  "DescribeLoadBalancers",
			"Version": "2012-06-01",
		}))
	})

	It("fails with an invalid argument error for a nil request", func() {

		var in *testCreateRequest
		_, err := codec.MarshalQuery("elasticloadbalancing", "CreateLoadBalancer", "2012-06-01", in)
		Expect(err).To(HaveOccurred())
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())

		_, err = codec.MarshalQuery("elasticloadbalancing", "CreateLoadBalancer", "2012-06-01", nil)
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
	})

	It("rejects shapes with scalars held by value", func() {
		_, err := codec.MarshalQuery("svc", "Op", "1", &testBadShape{Count: 1})
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("must be a pointer"))
	})

	It("round trips the non-nil fields through the encoded form", func() {

		request, err := codec.MarshalQuery("elasticloadbalancing", "CreateLoadBalancer", "2012-06-01",
			&testCreateRequest{
				LoadBalancerName: aws.String("a b&c"),
				Subnets:          []*string{aws.String("s1"), aws.String("s2"), aws.String("s3")},
			},
		)
		Expect(err).ToNot(HaveOccurred())

		encoded := request.Params.Encode()
		Expect(strings.HasPrefix(encoded, "Action=CreateLoadBalancer&LoadBalancerName=a+b%26c&")).To(BeTrue())

		values, err := url.ParseQuery(encoded)
		Expect(err).ToNot(HaveOccurred())
		Expect(values).To(Equal(request.Params.Values()))
		Expect(values.Get("Subnets.member.1")).To(Equal("s1"))
		Expect(values.Get("Subnets.member.2")).To(Equal("s2"))
		Expect(values.Get("Subnets.member.3")).To(Equal("s3"))
		Expect(values).To(HaveLen(6))
	})
})
