package elb

import (
	"context"
)

// AddTags adds the given tags to the load balancers. Tag keys must be unique for each load balancer.
func (c *Client) AddTags(ctx context.Context, in *AddTagsInput) (*AddTagsOutput, error) {
	out := &AddTagsOutput{}
	if err := c.client.InvokeQuery(ctx, "AddTags", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplySecurityGroupsToLoadBalancer associates security groups with a load balancer in a VPC, replacing the groups currently associated with it.
func (c *Client) ApplySecurityGroupsToLoadBalancer(ctx context.Context, in *ApplySecurityGroupsToLoadBalancerInput) (*ApplySecurityGroupsToLoadBalancerOutput, error) {
	out := &ApplySecurityGroupsToLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "ApplySecurityGroupsToLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// AttachLoadBalancerToSubnets adds subnets to the load balancer.
func (c *Client) AttachLoadBalancerToSubnets(ctx context.Context, in *AttachLoadBalancerToSubnetsInput) (*AttachLoadBalancerToSubnetsOutput, error) {
	out := &AttachLoadBalancerToSubnetsOutput{}
	if err := c.client.InvokeQuery(ctx, "AttachLoadBalancerToSubnets", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigureHealthCheck sets the health check used to evaluate the registered instances.
func (c *Client) ConfigureHealthCheck(ctx context.Context, in *ConfigureHealthCheckInput) (*ConfigureHealthCheckOutput, error) {
	out := &ConfigureHealthCheckOutput{}
	if err := c.client.InvokeQuery(ctx, "ConfigureHealthCheck", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppCookieStickinessPolicy creates a stickiness policy whose session lifetime follows an application generated cookie.
func (c *Client) CreateAppCookieStickinessPolicy(ctx context.Context, in *CreateAppCookieStickinessPolicyInput) (*CreateAppCookieStickinessPolicyOutput, error) {
	out := &CreateAppCookieStickinessPolicyOutput{}
	if err := c.client.InvokeQuery(ctx, "CreateAppCookieStickinessPolicy", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLBCookieStickinessPolicy creates a stickiness policy whose session lifetime is controlled by the browser or the expiration period.
func (c *Client) CreateLBCookieStickinessPolicy(ctx context.Context, in *CreateLBCookieStickinessPolicyInput) (*CreateLBCookieStickinessPolicyOutput, error) {
	out := &CreateLBCookieStickinessPolicyOutput{}
	if err := c.client.InvokeQuery(ctx, "CreateLBCookieStickinessPolicy", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoadBalancer creates a load balancer and returns its DNS name.
func (c *Client) CreateLoadBalancer(ctx context.Context, in *CreateLoadBalancerInput) (*CreateLoadBalancerOutput, error) {
	out := &CreateLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "CreateLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoadBalancerListeners creates listeners for the given ports.
func (c *Client) CreateLoadBalancerListeners(ctx context.Context, in *CreateLoadBalancerListenersInput) (*CreateLoadBalancerListenersOutput, error) {
	out := &CreateLoadBalancerListenersOutput{}
	if err := c.client.InvokeQuery(ctx, "CreateLoadBalancerListeners", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLoadBalancerPolicy creates a policy with the given attributes for the load balancer.
func (c *Client) CreateLoadBalancerPolicy(ctx context.Context, in *CreateLoadBalancerPolicyInput) (*CreateLoadBalancerPolicyOutput, error) {
	out := &CreateLoadBalancerPolicyOutput{}
	if err := c.client.InvokeQuery(ctx, "CreateLoadBalancerPolicy", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLoadBalancer deletes the load balancer. Deleting a load balancer that does not exist succeeds.
func (c *Client) DeleteLoadBalancer(ctx context.Context, in *DeleteLoadBalancerInput) (*DeleteLoadBalancerOutput, error) {
	out := &DeleteLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "DeleteLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLoadBalancerListeners deletes the listeners for the given ports.
func (c *Client) DeleteLoadBalancerListeners(ctx context.Context, in *DeleteLoadBalancerListenersInput) (*DeleteLoadBalancerListenersOutput, error) {
	out := &DeleteLoadBalancerListenersOutput{}
	if err := c.client.InvokeQuery(ctx, "DeleteLoadBalancerListeners", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLoadBalancerPolicy deletes a policy that is not enabled for any listener.
func (c *Client) DeleteLoadBalancerPolicy(ctx context.Context, in *DeleteLoadBalancerPolicyInput) (*DeleteLoadBalancerPolicyOutput, error) {
	out := &DeleteLoadBalancerPolicyOutput{}
	if err := c.client.InvokeQuery(ctx, "DeleteLoadBalancerPolicy", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeregisterInstancesFromLoadBalancer deregisters instances and returns the instances still registered.
func (c *Client) DeregisterInstancesFromLoadBalancer(ctx context.Context, in *DeregisterInstancesFromLoadBalancerInput) (*DeregisterInstancesFromLoadBalancerOutput, error) {
	out := &DeregisterInstancesFromLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "DeregisterInstancesFromLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeAccountLimits describes the load balancer limits of the account.
func (c *Client) DescribeAccountLimits(ctx context.Context, in *DescribeAccountLimitsInput) (*DescribeAccountLimitsOutput, error) {
	out := &DescribeAccountLimitsOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeAccountLimits", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeInstanceHealth describes the state of the given instances or of all registered instances.
func (c *Client) DescribeInstanceHealth(ctx context.Context, in *DescribeInstanceHealthInput) (*DescribeInstanceHealthOutput, error) {
	out := &DescribeInstanceHealthOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeInstanceHealth", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeLoadBalancerAttributes describes the attributes of the load balancer.
func (c *Client) DescribeLoadBalancerAttributes(ctx context.Context, in *DescribeLoadBalancerAttributesInput) (*DescribeLoadBalancerAttributesOutput, error) {
	out := &DescribeLoadBalancerAttributesOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeLoadBalancerAttributes", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeLoadBalancerPolicies describes the policies of a load balancer or the sample policies.
func (c *Client) DescribeLoadBalancerPolicies(ctx context.Context, in *DescribeLoadBalancerPoliciesInput) (*DescribeLoadBalancerPoliciesOutput, error) {
	out := &DescribeLoadBalancerPoliciesOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeLoadBalancerPolicies", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeLoadBalancerPolicyTypes describes the policy types that can be used to create policies.
func (c *Client) DescribeLoadBalancerPolicyTypes(ctx context.Context, in *DescribeLoadBalancerPolicyTypesInput) (*DescribeLoadBalancerPolicyTypesOutput, error) {
	out := &DescribeLoadBalancerPolicyTypesOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeLoadBalancerPolicyTypes", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeLoadBalancers describes the given load balancers or all load balancers of the account.
func (c *Client) DescribeLoadBalancers(ctx context.Context, in *DescribeLoadBalancersInput) (*DescribeLoadBalancersOutput, error) {
	out := &DescribeLoadBalancersOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeLoadBalancers", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeTags describes the tags of the given load balancers.
func (c *Client) DescribeTags(ctx context.Context, in *DescribeTagsInput) (*DescribeTagsOutput, error) {
	out := &DescribeTagsOutput{}
	if err := c.client.InvokeQuery(ctx, "DescribeTags", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DetachLoadBalancerFromSubnets removes subnets from the load balancer.
func (c *Client) DetachLoadBalancerFromSubnets(ctx context.Context, in *DetachLoadBalancerFromSubnetsInput) (*DetachLoadBalancerFromSubnetsOutput, error) {
	out := &DetachLoadBalancerFromSubnetsOutput{}
	if err := c.client.InvokeQuery(ctx, "DetachLoadBalancerFromSubnets", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DisableAvailabilityZonesForLoadBalancer removes availability zones from a load balancer in EC2-Classic.
func (c *Client) DisableAvailabilityZonesForLoadBalancer(ctx context.Context, in *DisableAvailabilityZonesForLoadBalancerInput) (*DisableAvailabilityZonesForLoadBalancerOutput, error) {
	out := &DisableAvailabilityZonesForLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "DisableAvailabilityZonesForLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// EnableAvailabilityZonesForLoadBalancer adds availability zones to a load balancer in EC2-Classic.
func (c *Client) EnableAvailabilityZonesForLoadBalancer(ctx context.Context, in *EnableAvailabilityZonesForLoadBalancerInput) (*EnableAvailabilityZonesForLoadBalancerOutput, error) {
	out := &EnableAvailabilityZonesForLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "EnableAvailabilityZonesForLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// ModifyLoadBalancerAttributes modifies the attributes of the load balancer.
func (c *Client) ModifyLoadBalancerAttributes(ctx context.Context, in *ModifyLoadBalancerAttributesInput) (*ModifyLoadBalancerAttributesOutput, error) {
	out := &ModifyLoadBalancerAttributesOutput{}
	if err := c.client.InvokeQuery(ctx, "ModifyLoadBalancerAttributes", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterInstancesWithLoadBalancer registers instances and returns all registered instances.
func (c *Client) RegisterInstancesWithLoadBalancer(ctx context.Context, in *RegisterInstancesWithLoadBalancerInput) (*RegisterInstancesWithLoadBalancerOutput, error) {
	out := &RegisterInstancesWithLoadBalancerOutput{}
	if err := c.client.InvokeQuery(ctx, "RegisterInstancesWithLoadBalancer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveTags removes tags from the load balancers.
func (c *Client) RemoveTags(ctx context.Context, in *RemoveTagsInput) (*RemoveTagsOutput, error) {
	out := &RemoveTagsOutput{}
	if err := c.client.InvokeQuery(ctx, "RemoveTags", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// SetLoadBalancerListenerSSLCertificate replaces the certificate of the listener on the given port.
func (c *Client) SetLoadBalancerListenerSSLCertificate(ctx context.Context, in *SetLoadBalancerListenerSSLCertificateInput) (*SetLoadBalancerListenerSSLCertificateOutput, error) {
	out := &SetLoadBalancerListenerSSLCertificateOutput{}
	if err := c.client.InvokeQuery(ctx, "SetLoadBalancerListenerSSLCertificate", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// SetLoadBalancerPoliciesForBackendServer replaces the policies of the back-end server port.
func (c *Client) SetLoadBalancerPoliciesForBackendServer(ctx context.Context, in *SetLoadBalancerPoliciesForBackendServerInput) (*SetLoadBalancerPoliciesForBackendServerOutput, error) {
	out := &SetLoadBalancerPoliciesForBackendServerOutput{}
	if err := c.client.InvokeQuery(ctx, "SetLoadBalancerPoliciesForBackendServer", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// SetLoadBalancerPoliciesOfListener replaces the policies of the listener on the given port.
func (c *Client) SetLoadBalancerPoliciesOfListener(ctx context.Context, in *SetLoadBalancerPoliciesOfListenerInput) (*SetLoadBalancerPoliciesOfListenerOutput, error) {
	out := &SetLoadBalancerPoliciesOfListenerOutput{}
	if err := c.client.InvokeQuery(ctx, "SetLoadBalancerPoliciesOfListener", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}
