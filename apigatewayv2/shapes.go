package apigatewayv2

type CreateApiInput struct {
	ApiKeySelectionExpression *string            `aws:"apiKeySelectionExpression"`
	CorsConfiguration         *Cors              `aws:"corsConfiguration"`
	CredentialsArn            *string            `aws:"credentialsArn"`
	Description               *string            `aws:"description"`
	DisableExecuteApiEndpoint *bool              `aws:"disableExecuteApiEndpoint"`
	Name                      *string            `aws:"name"`
	ProtocolType              *string            `aws:"protocolType"`
	RouteKey                  *string            `aws:"routeKey"`
	RouteSelectionExpression  *string            `aws:"routeSelectionExpression"`
	Tags                      map[string]*string `aws:"tags"`
	Target                    *string            `aws:"target"`
	Version                   *string            `aws:"version"`
}

type CreateApiOutput = Api

type GetApiInput struct {
	ApiId *string `aws:"apiId,uri"`
}

type GetApiOutput = Api

type GetApisInput struct {
	MaxResults *string `aws:"maxResults,querystring"`
	NextToken  *string `aws:"nextToken,querystring"`
}

type GetApisOutput struct {
	Items     []*Api  `aws:"items"`
	NextToken *string `aws:"nextToken"`
}

type UpdateApiInput struct {
	ApiId                     *string `aws:"apiId,uri"`
	ApiKeySelectionExpression *string `aws:"apiKeySelectionExpression"`
	CorsConfiguration         *Cors   `aws:"corsConfiguration"`
	CredentialsArn            *string `aws:"credentialsArn"`
	Description               *string `aws:"description"`
	DisableExecuteApiEndpoint *bool   `aws:"disableExecuteApiEndpoint"`
	Name                      *string `aws:"name"`
	RouteKey                  *string `aws:"routeKey"`
	RouteSelectionExpression  *string `aws:"routeSelectionExpression"`
	Target                    *string `aws:"target"`
	Version                   *string `aws:"version"`
}

type UpdateApiOutput = Api

type DeleteApiInput struct {
	ApiId *string `aws:"apiId,uri"`
}

type DeleteApiOutput struct{}

type CreateRouteInput struct {
	ApiId                            *string            `aws:"apiId,uri"`
	ApiKeyRequired                   *bool              `aws:"apiKeyRequired"`
	AuthorizationScopes              []*string          `aws:"authorizationScopes"`
	AuthorizationType                *string            `aws:"authorizationType"`
	AuthorizerId                     *string            `aws:"authorizerId"`
	ModelSelectionExpression         *string            `aws:"modelSelectionExpression"`
	OperationName                    *string            `aws:"operationName"`
	RequestModels                    map[string]*string `aws:"requestModels"`
	RouteKey                         *string            `aws:"routeKey"`
	RouteResponseSelectionExpression *string            `aws:"routeResponseSelectionExpression"`
	Target                           *string            `aws:"target"`
}

type CreateRouteOutput = Route

type GetRouteInput struct {
	ApiId   *string `aws:"apiId,uri"`
	RouteId *string `aws:"routeId,uri"`
}

type GetRouteOutput = Route

type GetRoutesInput struct {
	ApiId      *string `aws:"apiId,uri"`
	MaxResults *string `aws:"maxResults,querystring"`
	NextToken  *string `aws:"nextToken,querystring"`
}

type GetRoutesOutput struct {
	Items     []*Route `aws:"items"`
	NextToken *string  `aws:"nextToken"`
}

type DeleteRouteInput struct {
	ApiId   *string `aws:"apiId,uri"`
	RouteId *string `aws:"routeId,uri"`
}

type DeleteRouteOutput struct{}

type CreateIntegrationInput struct {
	ApiId                       *string            `aws:"apiId,uri"`
	ConnectionId                *string            `aws:"connectionId"`
	ConnectionType              *string            `aws:"connectionType"`
	CredentialsArn              *string            `aws:"credentialsArn"`
	Description                 *string            `aws:"description"`
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

type CreateIntegrationOutput = Integration

type GetIntegrationInput struct {
	ApiId         *string `aws:"apiId,uri"`
	IntegrationId *string `aws:"integrationId,uri"`
}

type GetIntegrationOutput = Integration

type GetIntegrationsInput struct {
	ApiId      *string `aws:"apiId,uri"`
	MaxResults *string `aws:"maxResults,querystring"`
	NextToken  *string `aws:"nextToken,querystring"`
}

type GetIntegrationsOutput struct {
	Items     []*Integration `aws:"items"`
	NextToken *string        `aws:"nextToken"`
}

type DeleteIntegrationInput struct {
	ApiId         *string `aws:"apiId,uri"`
	IntegrationId *string `aws:"integrationId,uri"`
}

type DeleteIntegrationOutput struct{}

type CreateStageInput struct {
	ApiId                *string            `aws:"apiId,uri"`
	AccessLogSettings    *AccessLogSettings `aws:"accessLogSettings"`
	AutoDeploy           *bool              `aws:"autoDeploy"`
	ClientCertificateId  *string            `aws:"clientCertificateId"`
	DefaultRouteSettings *RouteSettings     `aws:"defaultRouteSettings"`
	DeploymentId         *string            `aws:"deploymentId"`
	Description          *string            `aws:"description"`
	StageName            *string            `aws:"stageName"`
	StageVariables       map[string]*string `aws:"stageVariables"`
	Tags                 map[string]*string `aws:"tags"`
}

type CreateStageOutput = Stage

type GetStageInput struct {
	ApiId     *string `aws:"apiId,uri"`
	StageName *string `aws:"stageName,uri"`
}

type GetStageOutput = Stage

type GetStagesInput struct {
	ApiId      *string `aws:"apiId,uri"`
	MaxResults *string `aws:"maxResults,querystring"`
	NextToken  *string `aws:"nextToken,querystring"`
}

type GetStagesOutput struct {
	Items     []*Stage `aws:"items"`
	NextToken *string  `aws:"nextToken"`
}

type DeleteStageInput struct {
	ApiId     *string `aws:"apiId,uri"`
	StageName *string `aws:"stageName,uri"`
}

type DeleteStageOutput struct{}

type CreateDeploymentInput struct {
	ApiId       *string `aws:"apiId,uri"`
	Description *string `aws:"description"`
	StageName   *string `aws:"stageName"`
}

type CreateDeploymentOutput = Deployment

type GetDeploymentInput struct {
	ApiId        *string `aws:"apiId,uri"`
	DeploymentId *string `aws:"deploymentId,uri"`
}

type GetDeploymentOutput = Deployment

type GetDeploymentsInput struct {
	ApiId      *string `aws:"apiId,uri"`
	MaxResults *string `aws:"maxResults,querystring"`
	NextToken  *string `aws:"nextToken,querystring"`
}

type GetDeploymentsOutput struct {
	Items     []*Deployment `aws:"items"`
	NextToken *string       `aws:"nextToken"`
}

type TagResourceInput struct {
	ResourceArn *string            `aws:"resource-arn,uri"`
	Tags        map[string]*string `aws:"tags"`
}

type TagResourceOutput struct{}

type UntagResourceInput struct {
	ResourceArn *string   `aws:"resource-arn,uri"`
	TagKeys     []*string `aws:"tagKeys,querystring"`
}

type UntagResourceOutput struct{}

type GetTagsInput struct {
	ResourceArn *string `aws:"resource-arn,uri"`
}

type GetTagsOutput struct {
	Tags map[string]*string `aws:"tags"`
}
