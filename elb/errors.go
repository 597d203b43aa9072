package elb

import (
	"github.com/mevansam/awsapi/awserr"
)

// Error codes of the service. Error responses with these codes
// are returned as the typed errors below.
const (
	CodeLoadBalancerNotFound          = "LoadBalancerNotFound"
	CodeCertificateNotFound           = "CertificateNotFound"
	CodeDependencyThrottle            = "DependencyThrottle"
	CodeDuplicateLoadBalancerName     = "DuplicateLoadBalancerName"
	CodeDuplicateListener             = "DuplicateListener"
	CodeDuplicatePolicyName           = "DuplicatePolicyName"
	CodeDuplicateTagKeys              = "DuplicateTagKeys"
	CodeInvalidConfigurationRequest   = "InvalidConfigurationRequest"
	CodeInvalidInstance               = "InvalidInstance"
	CodeInvalidScheme                 = "InvalidScheme"
	CodeInvalidSecurityGroup          = "InvalidSecurityGroup"
	CodeInvalidSubnet                 = "InvalidSubnet"
	CodeListenerNotFound              = "ListenerNotFound"
	CodeLoadBalancerAttributeNotFound = "LoadBalancerAttributeNotFound"
	CodeOperationNotPermitted         = "OperationNotPermitted"
	CodePolicyNotFound                = "PolicyNotFound"
	CodePolicyTypeNotFound            = "PolicyTypeNotFound"
	CodeSubnetNotFound                = "SubnetNotFound"
	CodeTooManyLoadBalancers          = "TooManyLoadBalancers"
	CodeTooManyPolicies               = "TooManyPolicies"
	CodeTooManyTags                   = "TooManyTags"
	CodeUnsupportedProtocol           = "UnsupportedProtocol"
)

// AccessPointNotFoundException is returned when the load balancer does not exist.
type AccessPointNotFoundException struct {
	awserr.ServiceError
}

// CertificateNotFoundException is returned when the certificate does not exist.
type CertificateNotFoundException struct {
	awserr.ServiceError
}

// DependencyThrottleException is returned when a dependent service throttled the request.
type DependencyThrottleException struct {
	awserr.ServiceError
}

// DuplicateAccessPointNameException is returned when the load balancer name is already in use.
type DuplicateAccessPointNameException struct {
	awserr.ServiceError
}

// DuplicateListenerException is returned when a listener already exists for the port with different settings.
type DuplicateListenerException struct {
	awserr.ServiceError
}

// DuplicatePolicyNameException is returned when a policy with the name already exists.
type DuplicatePolicyNameException struct {
	awserr.ServiceError
}

// DuplicateTagKeysException is returned when a tag key was given more than once.
type DuplicateTagKeysException struct {
	awserr.ServiceError
}

// InvalidConfigurationRequestException is returned when the requested configuration change is not valid.
type InvalidConfigurationRequestException struct {
	awserr.ServiceError
}

// InvalidEndPointException is returned when an instance is not valid.
type InvalidEndPointException struct {
	awserr.ServiceError
}

// InvalidSchemeException is returned when the scheme is not valid.
type InvalidSchemeException struct {
	awserr.ServiceError
}

// InvalidSecurityGroupException is returned when a security group is not valid.
type InvalidSecurityGroupException struct {
	awserr.ServiceError
}

// InvalidSubnetException is returned when a subnet is not valid.
type InvalidSubnetException struct {
	awserr.ServiceError
}

// ListenerNotFoundException is returned when the load balancer has no listener on the port.
type ListenerNotFoundException struct {
	awserr.ServiceError
}

// LoadBalancerAttributeNotFoundException is returned when the attribute does not exist.
type LoadBalancerAttributeNotFoundException struct {
	awserr.ServiceError
}

// OperationNotPermittedException is returned when the operation is not permitted.
type OperationNotPermittedException struct {
	awserr.ServiceError
}

// PolicyNotFoundException is returned when a policy does not exist.
type PolicyNotFoundException struct {
	awserr.ServiceError
}

// PolicyTypeNotFoundException is returned when a policy type does not exist.
type PolicyTypeNotFoundException struct {
	awserr.ServiceError
}

// SubnetNotFoundException is returned when a subnet does not exist.
type SubnetNotFoundException struct {
	awserr.ServiceError
}

// TooManyAccessPointsException is returned when the quota of load balancers was reached.
type TooManyAccessPointsException struct {
	awserr.ServiceError
}

// TooManyPoliciesException is returned when the quota of policies was reached.
type TooManyPoliciesException struct {
	awserr.ServiceError
}

// TooManyTagsException is returned when the quota of tags was reached.
type TooManyTagsException struct {
	awserr.ServiceError
}

// UnsupportedProtocolException is returned when the protocol is not supported.
type UnsupportedProtocolException struct {
	awserr.ServiceError
}

// newErrorRegistry returns the error unmarshallers of the
// service in the order they are matched.
func newErrorRegistry() *awserr.Registry {
	return awserr.NewRegistry(
		awserr.ForCode(CodeLoadBalancerNotFound, func(se awserr.ServiceError) error {
			return &AccessPointNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeCertificateNotFound, func(se awserr.ServiceError) error {
			return &CertificateNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeDependencyThrottle, func(se awserr.ServiceError) error {
			return &DependencyThrottleException{ServiceError: se}
		}),
		awserr.ForCode(CodeDuplicateLoadBalancerName, func(se awserr.ServiceError) error {
			return &DuplicateAccessPointNameException{ServiceError: se}
		}),
		awserr.ForCode(CodeDuplicateListener, func(se awserr.ServiceError) error {
			return &DuplicateListenerException{ServiceError: se}
		}),
		awserr.ForCode(CodeDuplicatePolicyName, func(se awserr.ServiceError) error {
			return &DuplicatePolicyNameException{ServiceError: se}
		}),
		awserr.ForCode(CodeDuplicateTagKeys, func(se awserr.ServiceError) error {
			return &DuplicateTagKeysException{ServiceError: se}
		}),
		awserr.ForCode(CodeInvalidConfigurationRequest, func(se awserr.ServiceError) error {
			return &InvalidConfigurationRequestException{ServiceError: se}
		}),
		awserr.ForCode(CodeInvalidInstance, func(se awserr.ServiceError) error {
			return &InvalidEndPointException{ServiceError: se}
		}),
		awserr.ForCode(CodeInvalidScheme, func(se awserr.ServiceError) error {
			return &InvalidSchemeException{ServiceError: se}
		}),
		awserr.ForCode(CodeInvalidSecurityGroup, func(se awserr.ServiceError) error {
			return &InvalidSecurityGroupException{ServiceError: se}
		}),
		awserr.ForCode(CodeInvalidSubnet, func(se awserr.ServiceError) error {
			return &InvalidSubnetException{ServiceError: se}
		}),
		awserr.ForCode(CodeListenerNotFound, func(se awserr.ServiceError) error {
			return &ListenerNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeLoadBalancerAttributeNotFound, func(se awserr.ServiceError) error {
			return &LoadBalancerAttributeNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeOperationNotPermitted, func(se awserr.ServiceError) error {
			return &OperationNotPermittedException{ServiceError: se}
		}),
		awserr.ForCode(CodePolicyNotFound, func(se awserr.ServiceError) error {
			return &PolicyNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodePolicyTypeNotFound, func(se awserr.ServiceError) error {
			return &PolicyTypeNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeSubnetNotFound, func(se awserr.ServiceError) error {
			return &SubnetNotFoundException{ServiceError: se}
		}),
		awserr.ForCode(CodeTooManyLoadBalancers, func(se awserr.ServiceError) error {
			return &TooManyAccessPointsException{ServiceError: se}
		}),
		awserr.ForCode(CodeTooManyPolicies, func(se awserr.ServiceError) error {
			return &TooManyPoliciesException{ServiceError: se}
		}),
		awserr.ForCode(CodeTooManyTags, func(se awserr.ServiceError) error {
			return &TooManyTagsException{ServiceError: se}
		}),
		awserr.ForCode(CodeUnsupportedProtocol, func(se awserr.ServiceError) error {
			return &UnsupportedProtocolException{ServiceError: se}
		}),
	)
}
