package apigatewayv2

import "time"

// Cors is the cross origin resource sharing configuration of
// an HTTP api.
type Cors struct {
	AllowCredentials *bool     `aws:"allowCredentials"`
	AllowHeaders     []*string `aws:"allowHeaders"`
	AllowMethods     []*string `aws:"allowMethods"`
	AllowOrigins     []*string `aws:"allowOrigins"`
	ExposeHeaders    []*string `aws:"exposeHeaders"`
	MaxAge           *int32    `aws:"maxAge"`
}

type Api struct {
	ApiEndpoint               *string            `aws:"apiEndpoint"`
	ApiGatewayManaged         *bool              `aws:"apiGatewayManaged"`
	ApiId                     *string            `aws:"apiId"`
	ApiKeySelectionExpression *string            `aws:"apiKeySelectionExpression"`
	CorsConfiguration         *Cors              `aws:"corsConfiguration"`
	CreatedDate               *time.Time         `aws:"createdDate"`
	Description               *string            `aws:"description"`
	DisableExecuteApiEndpoint *bool              `aws:"disableExecuteApiEndpoint"`
	ImportInfo                []*string          `aws:"importInfo"`
	Name                      *string            `aws:"name"`
	ProtocolType              *string            `aws:"protocolType"`
	RouteSelectionExpression  *string            `aws:"routeSelectionExpression"`
	Tags                      map[string]*string `aws:"tags"`
	Version                   *string            `aws:"version"`
	Warnings                  []*string          `aws:"warnings"`
}

type Route struct {
	ApiGatewayManaged                *bool              `aws:"apiGatewayManaged"`
	ApiKeyRequired                   *bool              `aws:"apiKeyRequired"`
	AuthorizationScopes              []*string          `aws:"authorizationScopes"`
	AuthorizationType                *string            `aws:"authorizationType"`
	AuthorizerId                     *string            `aws:"authorizerId"`
	ModelSelectionExpression         *string            `aws:"modelSelectionExpression"`
	OperationName                    *string            `aws:"operationName"`
	RequestModels                    map[string]*string `aws:"requestModels"`
	RouteId                          *string            `aws:"routeId"`
	RouteKey                         *string            `aws:"routeKey"`
	RouteResponseSelectionExpression *string            `aws:"routeResponseSelectionExpression"`
	Target                           *string            `aws:"target"`
}

type Integration struct {
	ApiGatewayManaged           *bool              `aws:"apiGatewayManaged"`
	ConnectionId                *string            `aws:"connectionId"`
	ConnectionType              *string            `aws:"connectionType"`
	CredentialsArn              *string            `aws:"credentialsArn"`
	Description                 *string            `aws:"description"`
	IntegrationId               *string            `aws:"integrationId"`
	IntegrationMethod           *string            `aws:"integrationMethod"`
	IntegrationSubtype          *string            `aws:"integrationSubtype"`
	IntegrationType             *string            `aws:"integrationType"`
	IntegrationUri              *string            `aws:"integrationUri"`
	PassthroughBehavior         *string            `aws:"passthroughBehavior"`
	PayloadFormatVersion        *string            `aws:"payloadFormatVersion"`
	RequestParameters           map[string]*string `aws:"requestParameters"`
	RequestTemplates            map[string]*string `aws:"requestTemplates"`
	TemplateSelectionExpression *string            `aws:"templateSelectionExpression"`
	TimeoutInMillis             *int32             `aws:"timeoutInMillis"`
}

type RouteSettings struct {
	DataTraceEnabled       *bool    `aws:"dataTraceEnabled"`
	DetailedMetricsEnabled *bool    `aws:"detailedMetricsEnabled"`
	LoggingLevel           *string  `aws:"loggingLevel"`
	ThrottlingBurstLimit   *int32   `aws:"throttlingBurstLimit"`
	ThrottlingRateLimit    *float64 `aws:"throttlingRateLimit"`
}

type AccessLogSettings struct {
	DestinationArn *string `aws:"destinationArn"`
	Format         *string `aws:"format"`
}

type Stage struct {
	AccessLogSettings           *AccessLogSettings `aws:"accessLogSettings"`
	ApiGatewayManaged           *bool              `aws:"apiGatewayManaged"`
	AutoDeploy                  *bool              `aws:"autoDeploy"`
	ClientCertificateId         *string            `aws:"clientCertificateId"`
	CreatedDate                 *time.Time         `aws:"createdDate"`
	DefaultRouteSettings        *RouteSettings     `aws:"defaultRouteSettings"`
	DeploymentId                *string            `aws:"deploymentId"`
	Description                 *string            `aws:"description"`
	LastDeploymentStatusMessage *string            `aws:"lastDeploymentStatusMessage"`
	LastUpdatedDate             *time.Time         `aws:"lastUpdatedDate"`
	StageName                   *string            `aws:"stageName"`
	StageVariables              map[string]*string `aws:"stageVariables"`
	Tags                        map[string]*string `aws:"tags"`
}

type Deployment struct {
	AutoDeployed            *bool      `aws:"autoDeployed"`
	CreatedDate             *time.Time `aws:"createdDate"`
	DeploymentId            *string    `aws:"deploymentId"`
	DeploymentStatus        *string    `aws:"deploymentStatus"`
	DeploymentStatusMessage *string    `aws:"deploymentStatusMessage"`
	Description             *string    `aws:"description"`
}
