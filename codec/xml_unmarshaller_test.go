package codec_test

import (
	"strings"
	"time"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/codec"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("xml stream unmarshaller", func() {

	It("unmarshals a nested shape from a response document", func() {

		result := &testHealthCheckResult{}
		err := codec.UnmarshalXMLDocument(strings.NewReader(configureHealthCheckResponse), result)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.HealthCheck).ToNot(BeNil())
		Expect(*result.HealthCheck.Target).To(Equal("HTTP:80/"))
		Expect(*result.HealthCheck.Interval).To(Equal(int32(30)))
		Expect(result.HealthCheck.Timeout).To(BeNil())
	})

	It("unmarshals lists of shapes and skips unknown elements at any depth", func() {

		result := &testDescribeResult{}
		err := codec.UnmarshalXMLDocument(strings.NewReader(describeLoadBalancersResponse), result)
		Expect(err).ToNot(HaveOccurred())

		Expect(result.Descriptions).To(HaveLen(2))
		Expect(*result.NextMarker).To(Equal("abc"))

		d := result.Descriptions[0]
		Expect(*d.LoadBalancerName).To(Equal("prod-lb"))
		Expect(*d.DNSName).To(Equal("prod-lb-123.us-east-1.elb.amazonaws.com"))
		Expect(*d.HealthCheck.Target).To(Equal("TCP:443"))
		Expect(*d.HealthCheck.UnhealthyThreshold).To(Equal(int32(2)))
		Expect(d.Subnets).To(HaveLen(2))
		Expect(*d.Subnets[0]).To(Equal("subnet-1"))
		Expect(*d.Subnets[1]).To(Equal("subnet-2"))
		Expect(d.Instances).To(Equal([]string{"i-1"}))
		Expect(*d.CreatedTime).To(BeTemporally("==", time.Date(2019, time.June, 1, 12, 30, 0, 120000000, time.UTC)))
		Expect(*d.CrossZone).To(BeTrue())

		d = result.Descriptions[1]
		Expect(*d.LoadBalancerName).To(Equal("dev-lb"))
		// the name of the nested unknown element matches a member
		// name but is at the wrong depth
		Expect(d.DNSName).To(BeNil())
		Expect(d.Subnets).ToNot(BeNil())
		Expect(d.Subnets).To(BeEmpty())
		Expect(d.Instances).To(BeNil())
		// empty text of a non string member leaves it unset
		Expect(d.CrossZone).To(BeNil())
	})

	It("leaves the cursor after the element's closing tag", func() {

		cursor := codec.NewXMLCursor(strings.NewReader(
			`<Checks><HealthCheck><Target>a</Target><Extra><Target>x</Target></Extra></HealthCheck>` +
				`<HealthCheck><Interval>5</Interval></HealthCheck><Tail/></Checks>`,
		))

		event, err := cursor.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(event).To(Equal(codec.EventStartElement))

		first, second := &testHealthCheck{}, &testHealthCheck{}

		event, err = cursor.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(cursor.Path()).To(Equal("Checks/HealthCheck"))
		Expect(codec.UnmarshalXML(cursor, first)).To(Succeed())
		Expect(cursor.Depth()).To(Equal(1))

		event, err = cursor.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(event).To(Equal(codec.EventStartElement))
		Expect(cursor.Path()).To(Equal("Checks/HealthCheck"))
		Expect(codec.UnmarshalXML(cursor, second)).To(Succeed())
		Expect(cursor.Depth()).To(Equal(1))

		event, err = cursor.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(cursor.Path()).To(Equal("Checks/Tail"))

		Expect(*first.Target).To(Equal("a"))
		Expect(first.Interval).To(BeNil())
		Expect(second.Target).To(BeNil())
		Expect(*second.Interval).To(Equal(int32(5)))
	})

	It("matches member paths relative to a depth", func() {

		cursor := codec.NewXMLCursor(strings.NewReader(`<a><Subnets><member>x</member></Subnets></a>`))
		for i := 0; i < 3; i++ {
			_, err := cursor.Next()
			Expect(err).ToNot(HaveOccurred())
		}
		Expect(cursor.TestExpression("Subnets/member", 2)).To(BeTrue())
		Expect(cursor.TestExpression("member", 3)).To(BeTrue())
		Expect(cursor.TestExpression("Subnets/member", 1)).To(BeFalse())
		Expect(cursor.TestExpression("Tags/member", 2)).To(BeFalse())
		Expect(cursor.TestExpression(".", 7)).To(BeTrue())

		text, err := cursor.ReadText()
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("x"))
		Expect(cursor.Depth()).To(Equal(3))

		event, err := cursor.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(event).To(Equal(codec.EventEndElement))
		Expect(cursor.Depth()).To(Equal(2))
	})

	It("unmarshals recursive shapes", func() {

		node := &testNode{}
		err := codec.UnmarshalXMLDocument(strings.NewReader(
			`<R><Result><Name>root</Name><Children><member><Name>c1</Name><Children>`+
				`<member><Name>g1</Name></member></Children></member></Children></Result></R>`,
		), node)
		Expect(err).ToNot(HaveOccurred())
		Expect(*node.Name).To(Equal("root"))
		Expect(node.Children).To(HaveLen(1))
		Expect(*node.Children[0].Name).To(Equal("c1"))
		Expect(*node.Children[0].Children[0].Name).To(Equal("g1"))
	})

	It("fails with a deserialization error on a malformed document", func() {

		err := codec.UnmarshalXMLDocument(strings.NewReader(
			`<R><Result><HealthCheck><Target>HTTP:80/</Target>`,
		), &testHealthCheckResult{})
		Expect(err).To(HaveOccurred())
		Expect(awserr.IsDeserialization(err)).To(BeTrue())

		err = codec.UnmarshalXMLDocument(strings.NewReader(
			`<R><Result><HealthCheck><Interval>thirty</Interval></HealthCheck></Result></R>`,
		), &testHealthCheckResult{})
		Expect(awserr.IsDeserialization(err)).To(BeTrue())

		err = codec.UnmarshalXMLDocument(strings.NewReader(
			`<R><Result><HealthCheck><Target><b>x</b></Target></HealthCheck></Result></R>`,
		), &testHealthCheckResult{})
		Expect(awserr.IsDeserialization(err)).To(BeTrue())
	})

	It("rejects a nil target", func() {
		var result *testHealthCheckResult
		err := codec.UnmarshalXMLDocument(strings.NewReader(configureHealthCheckResponse), result)
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())
	})
})

const configureHealthCheckResponse = `<?xml version="1.0" encoding="UTF-8"?>
<ConfigureHealthCheckResponse xmlns="http://elasticloadbalancing.amazonaws.com/doc/2012-06-01/">
  <ConfigureHealthCheckResult>
    <HealthCheck><Target>HTTP:80/</Target><Interval>30</Interval></HealthCheck>
  </ConfigureHealthCheckResult>
  <ResponseMetadata>
    <RequestId>83c88b9d-12b7-11e3-8b82-87b12EXAMPLE</RequestId>
  </ResponseMetadata>
</ConfigureHealthCheckResponse>`

const describeLoadBalancersResponse = `<DescribeLoadBalancersResponse xmlns="http://elasticloadbalancing.amazonaws.com/doc/2012-06-01/">
  <DescribeLoadBalancersResult>
    <LoadBalancerDescriptions>
      <member>
        <LoadBalancerName>prod-lb</LoadBalancerName>
        <DNSName>prod-lb-123.us-east-1.elb.amazonaws.com</DNSName>
        <HealthCheck>
          <Target>TCP:443</Target>
          <UnhealthyThreshold>2</UnhealthyThreshold>
          <SomethingNew><Target>ignored</Target></SomethingNew>
        </HealthCheck>
        <Subnets>
          <member>subnet-1</member>
          <member>subnet-2</member>
        </Subnets>
        <Instances><member>i-1</member></Instances>
        <CreatedTime>2019-06-01T12:30:00.120Z</CreatedTime>
        <CrossZone>true</CrossZone>
      </member>
      <member>
        <LoadBalancerName>dev-lb</LoadBalancerName>
        <Unknown><DNSName>wrong-depth</DNSName></Unknown>
        <Subnets/>
        <CrossZone></CrossZone>
      </member>
    </LoadBalancerDescriptions>
    <NextMarker>abc</NextMarker>
  </DescribeLoadBalancersResult>
  <ResponseMetadata><RequestId>req-1</RequestId></ResponseMetadata>
</DescribeLoadBalancersResponse>`
