package elb

type AddTagsInput struct {
	LoadBalancerNames []*string `aws:"LoadBalancerNames"`
	Tags              []*Tag    `aws:"Tags"`
}

type AddTagsOutput struct{}

type ApplySecurityGroupsToLoadBalancerInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	SecurityGroups   []*string `aws:"SecurityGroups"`
}

type ApplySecurityGroupsToLoadBalancerOutput struct {
	SecurityGroups []*string `aws:"SecurityGroups"`
}

type AttachLoadBalancerToSubnetsInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	Subnets          []*string `aws:"Subnets"`
}

type AttachLoadBalancerToSubnetsOutput struct {
	Subnets []*string `aws:"Subnets"`
}

type ConfigureHealthCheckInput struct {
	LoadBalancerName *string      `aws:"LoadBalancerName"`
	HealthCheck      *HealthCheck `aws:"HealthCheck"`
}

type ConfigureHealthCheckOutput struct {
	HealthCheck *HealthCheck `aws:"HealthCheck"`
}

type CreateAppCookieStickinessPolicyInput struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
	PolicyName       *string `aws:"PolicyName"`
	CookieName       *string `aws:"CookieName"`
}

type CreateAppCookieStickinessPolicyOutput struct{}

type CreateLBCookieStickinessPolicyInput struct {
	LoadBalancerName       *string `aws:"LoadBalancerName"`
	PolicyName             *string `aws:"PolicyName"`
	CookieExpirationPeriod *int64  `aws:"CookieExpirationPeriod"`
}

type CreateLBCookieStickinessPolicyOutput struct{}

type CreateLoadBalancerInput struct {
	LoadBalancerName  *string     `aws:"LoadBalancerName"`
	Listeners         []*Listener `aws:"Listeners"`
	AvailabilityZones []*string   `aws:"AvailabilityZones"`
	Subnets           []*string   `aws:"Subnets"`
	SecurityGroups    []*string   `aws:"SecurityGroups"`
	Scheme            *string     `aws:"Scheme"`
	Tags              []*Tag      `aws:"Tags"`
}

type CreateLoadBalancerOutput struct {
	DNSName *string `aws:"DNSName"`
}

type CreateLoadBalancerListenersInput struct {
	LoadBalancerName *string     `aws:"LoadBalancerName"`
	Listeners        []*Listener `aws:"Listeners"`
}

type CreateLoadBalancerListenersOutput struct{}

type CreateLoadBalancerPolicyInput struct {
	LoadBalancerName *string            `aws:"LoadBalancerName"`
	PolicyName       *string            `aws:"PolicyName"`
	PolicyTypeName   *string            `aws:"PolicyTypeName"`
	PolicyAttributes []*PolicyAttribute `aws:"PolicyAttributes"`
}

type CreateLoadBalancerPolicyOutput struct{}

type DeleteLoadBalancerInput struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
}

type DeleteLoadBalancerOutput struct{}

type DeleteLoadBalancerListenersInput struct {
	LoadBalancerName  *string  `aws:"LoadBalancerName"`
	LoadBalancerPorts []*int32 `aws:"LoadBalancerPorts"`
}

type DeleteLoadBalancerListenersOutput struct{}

type DeleteLoadBalancerPolicyInput struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
	PolicyName       *string `aws:"PolicyName"`
}

type DeleteLoadBalancerPolicyOutput struct{}

type DeregisterInstancesFromLoadBalancerInput struct {
	LoadBalancerName *string     `aws:"LoadBalancerName"`
	Instances        []*Instance `aws:"Instances"`
}

type DeregisterInstancesFromLoadBalancerOutput struct {
	Instances []*Instance `aws:"Instances"`
}

type DescribeAccountLimitsInput struct {
	Marker   *string `aws:"Marker"`
	PageSize *int32  `aws:"PageSize"`
}

type DescribeAccountLimitsOutput struct {
	Limits     []*Limit `aws:"Limits"`
	NextMarker *string  `aws:"NextMarker"`
}

type DescribeInstanceHealthInput struct {
	LoadBalancerName *string     `aws:"LoadBalancerName"`
	Instances        []*Instance `aws:"Instances"`
}

type DescribeInstanceHealthOutput struct {
	InstanceStates []*InstanceState `aws:"InstanceStates"`
}

type DescribeLoadBalancerAttributesInput struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
}

type DescribeLoadBalancerAttributesOutput struct {
	LoadBalancerAttributes *LoadBalancerAttributes `aws:"LoadBalancerAttributes"`
}

type DescribeLoadBalancerPoliciesInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	PolicyNames      []*string `aws:"PolicyNames"`
}

type DescribeLoadBalancerPoliciesOutput struct {
	PolicyDescriptions []*PolicyDescription `aws:"PolicyDescriptions"`
}

type DescribeLoadBalancerPolicyTypesInput struct {
	PolicyTypeNames []*string `aws:"PolicyTypeNames"`
}

type DescribeLoadBalancerPolicyTypesOutput struct {
	PolicyTypeDescriptions []*PolicyTypeDescription `aws:"PolicyTypeDescriptions"`
}

type DescribeLoadBalancersInput struct {
	LoadBalancerNames []*string `aws:"LoadBalancerNames"`
	Marker            *string   `aws:"Marker"`
	PageSize          *int32    `aws:"PageSize"`
}

type DescribeLoadBalancersOutput struct {
	LoadBalancerDescriptions []*LoadBalancerDescription `aws:"LoadBalancerDescriptions"`
	NextMarker               *string                    `aws:"NextMarker"`
}

type DescribeTagsInput struct {
	LoadBalancerNames []*string `aws:"LoadBalancerNames"`
}

type DescribeTagsOutput struct {
	TagDescriptions []*TagDescription `aws:"TagDescriptions"`
}

type DetachLoadBalancerFromSubnetsInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	Subnets          []*string `aws:"Subnets"`
}

type DetachLoadBalancerFromSubnetsOutput struct {
	Subnets []*string `aws:"Subnets"`
}

type DisableAvailabilityZonesForLoadBalancerInput struct {
	LoadBalancerName  *string   `aws:"LoadBalancerName"`
	AvailabilityZones []*string `aws:"AvailabilityZones"`
}

type DisableAvailabilityZonesForLoadBalancerOutput struct {
	AvailabilityZones []*string `aws:"AvailabilityZones"`
}

type EnableAvailabilityZonesForLoadBalancerInput struct {
	LoadBalancerName  *string   `aws:"LoadBalancerName"`
	AvailabilityZones []*string `aws:"AvailabilityZones"`
}

type EnableAvailabilityZonesForLoadBalancerOutput struct {
	AvailabilityZones []*string `aws:"AvailabilityZones"`
}

type ModifyLoadBalancerAttributesInput struct {
	LoadBalancerName       *string                 `aws:"LoadBalancerName"`
	LoadBalancerAttributes *LoadBalancerAttributes `aws:"LoadBalancerAttributes"`
}

type ModifyLoadBalancerAttributesOutput struct {
	LoadBalancerName       *string                 `aws:"LoadBalancerName"`
	LoadBalancerAttributes *LoadBalancerAttributes `aws:"LoadBalancerAttributes"`
}

type RegisterInstancesWithLoadBalancerInput struct {
	LoadBalancerName *string     `aws:"LoadBalancerName"`
	Instances        []*Instance `aws:"Instances"`
}

type RegisterInstancesWithLoadBalancerOutput struct {
	Instances []*Instance `aws:"Instances"`
}

type RemoveTagsInput struct {
	LoadBalancerNames []*string     `aws:"LoadBalancerNames"`
	Tags              []*TagKeyOnly `aws:"Tags"`
}

type RemoveTagsOutput struct{}

type SetLoadBalancerListenerSSLCertificateInput struct {
	LoadBalancerName *string `aws:"LoadBalancerName"`
	LoadBalancerPort *int32  `aws:"LoadBalancerPort"`
	SSLCertificateId *string `aws:"SSLCertificateId"`
}

type SetLoadBalancerListenerSSLCertificateOutput struct{}

type SetLoadBalancerPoliciesForBackendServerInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	InstancePort     *int32    `aws:"InstancePort"`
	PolicyNames      []*string `aws:"PolicyNames"`
}

type SetLoadBalancerPoliciesForBackendServerOutput struct{}

type SetLoadBalancerPoliciesOfListenerInput struct {
	LoadBalancerName *string   `aws:"LoadBalancerName"`
	LoadBalancerPort *int32    `aws:"LoadBalancerPort"`
	PolicyNames      []*string `aws:"PolicyNames"`
}

type SetLoadBalancerPoliciesOfListenerOutput struct{}
