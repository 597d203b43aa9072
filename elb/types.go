package elb

import "time"

type Tag struct {
	Key   *string `aws:"Key"`
	Value *string `aws:"Value"`
}

type TagKeyOnly struct {
	Key *string `aws:"Key"`
}

type TagDescription struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
	Tags             []*Tag  `aws:"Tags"`
}

type Listener struct {
	Protocol         *string `aws:"Protocol"`
	LoadBalancerPort *int32  `aws:"LoadBalancerPort"`
	InstanceProtocol *string `aws:"InstanceProtocol"`
	InstancePort     *int32  `aws:"InstancePort"`
	SSLCertificateId *string `aws:"SSLCertificateId"`
}

type ListenerDescription struct {
	Listener    *Listener `aws:"Listener"`
	PolicyNames []*string `aws:"PolicyNames"`
}

type HealthCheck struct {
	Target             *string `aws:"Target"`
	Interval           *int32  `aws:"Interval"`
	Timeout            *int32  `aws:"Timeout"`
	UnhealthyThreshold *int32  `aws:"UnhealthyThreshold"`
	HealthyThreshold   *int32  `aws:"HealthyThreshold"`
}

type Instance struct {
	InstanceId *string `aws:"InstanceId"`
}

type InstanceState struct {
	InstanceId  *string `aws:"InstanceId"`
	State       *string `aws:"State"`
	ReasonCode  *string `aws:"ReasonCode"`
	Description *string `aws:"Description"`
}

type AppCookieStickinessPolicy struct {
	PolicyName *string `aws:"PolicyName"`
	CookieName *string `aws:"CookieName"`
}

type LBCookieStickinessPolicy struct {
	PolicyName             *string `aws:"PolicyName"`
	CookieExpirationPeriod *int64  `aws:"CookieExpirationPeriod"`
}

type Policies struct {
	AppCookieStickinessPolicies []*AppCookieStickinessPolicy `aws:"AppCookieStickinessPolicies"`
	LBCookieStickinessPolicies  []*LBCookieStickinessPolicy  `aws:"LBCookieStickinessPolicies"`
	OtherPolicies               []*string                    `aws:"OtherPolicies"`
}

type BackendServerDescription struct {
	InstancePort *int32    `aws:"InstancePort"`
	PolicyNames  []*string `aws:"PolicyNames"`
}

type SourceSecurityGroup struct {
	OwnerAlias *string `aws:"OwnerAlias"`
	GroupName  *string `aws:"GroupName"`
}

type LoadBalancerDescription struct {
	LoadBalancerName          *string                     `aws:"LoadBalancerName"`
	DNSName                   *string                     `aws:"DNSName"`
	CanonicalHostedZoneName   *string                     `aws:"CanonicalHostedZoneName"`
	CanonicalHostedZoneNameID *string                     `aws:"CanonicalHostedZoneNameID"`
	ListenerDescriptions      []*ListenerDescription      `aws:"ListenerDescriptions"`
	Policies                  *Policies                   `aws:"Policies"`
	BackendServerDescriptions []*BackendServerDescription `aws:"BackendServerDescriptions"`
	AvailabilityZones         []*string                   `aws:"AvailabilityZones"`
	Subnets                   []*string                   `aws:"Subnets"`
	VPCId                     *string                     `aws:"VPCId"`
	Instances                 []*Instance                 `aws:"Instances"`
	HealthCheck               *HealthCheck                `aws:"HealthCheck"`
	SourceSecurityGroup       *SourceSecurityGroup        `aws:"SourceSecurityGroup"`
	SecurityGroups            []*string                   `aws:"SecurityGroups"`
	CreatedTime               *time.Time                  `aws:"CreatedTime"`
	Scheme                    *string                     `aws:"Scheme"`
}

type PolicyAttribute struct {
	AttributeName  *string `aws:"AttributeName"`
	AttributeValue *string `aws:"AttributeValue"`
}

type PolicyAttributeDescription struct {
	AttributeName  *string `aws:"AttributeName"`
	AttributeValue *string `aws:"AttributeValue"`
}

type PolicyDescription struct {
	PolicyName                  *string                       `aws:"PolicyName"`
	PolicyTypeName              *string                       `aws:"PolicyTypeName"`
	PolicyAttributeDescriptions []*PolicyAttributeDescription `aws:"PolicyAttributeDescriptions"`
}

type PolicyAttributeTypeDescription struct {
	AttributeName *string `aws:"AttributeName"`
	AttributeType *string `aws:"AttributeType"`
	Description   *string `aws:"Description"`
	DefaultValue  *string `aws:"DefaultValue"`
	Cardinality   *string `aws:"Cardinality"`
}

type PolicyTypeDescription struct {
	PolicyTypeName                  *string                           `aws:"PolicyTypeName"`
	Description                     *string                           `aws:"Description"`
	PolicyAttributeTypeDescriptions []*PolicyAttributeTypeDescription `aws:"PolicyAttributeTypeDescriptions"`
}

type Limit struct {
	Name *string `aws:"Name"`
	Max  *string `aws:"Max"`
}

type CrossZoneLoadBalancing struct {
	Enabled *bool `aws:"Enabled"`
}

type AccessLog struct {
	Enabled        *bool   `aws:"Enabled"`
	S3BucketName   *string `aws:"S3BucketName"`
	EmitInterval   *int32  `aws:"EmitInterval"`
	S3BucketPrefix *string `aws:"S3BucketPrefix"`
}

type ConnectionDraining struct {
	Enabled *bool  `aws:"Enabled"`
	Timeout *int32 `aws:"Timeout"`
}

type ConnectionSettings struct {
	IdleTimeout *int32 `aws:"IdleTimeout"`
}

type AdditionalAttribute struct {
	Key   *string `aws:"Key"`
	Value *string `aws:"Value"`
}

type LoadBalancerAttributes struct {
	CrossZoneLoadBalancing *CrossZoneLoadBalancing `aws:"CrossZoneLoadBalancing"`
	AccessLog              *AccessLog              `aws:"AccessLog"`
	ConnectionDraining     *ConnectionDraining     `aws:"ConnectionDraining"`
	ConnectionSettings     *ConnectionSettings     `aws:"ConnectionSettings"`
	AdditionalAttributes   []*AdditionalAttribute  `aws:"AdditionalAttributes"`
}
