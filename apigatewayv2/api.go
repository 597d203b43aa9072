package apigatewayv2

import (
	"context"
	"net/http"
)

// CreateApi creates an HTTP or WebSocket api.
func (c *Client) CreateApi(ctx context.Context, in *CreateApiInput) (*CreateApiOutput, error) {
	out := &CreateApiOutput{}
	if err := c.client.InvokeREST(ctx, "CreateApi", http.MethodPost, "/v2/apis", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApi gets the api with the given id.
func (c *Client) GetApi(ctx context.Context, in *GetApiInput) (*GetApiOutput, error) {
	out := &GetApiOutput{}
	if err := c.client.InvokeREST(ctx, "GetApi", http.MethodGet, "/v2/apis/{apiId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApis gets a page of the apis of the account.
func (c *Client) GetApis(ctx context.Context, in *GetApisInput) (*GetApisOutput, error) {
	out := &GetApisOutput{}
	if err := c.client.InvokeREST(ctx, "GetApis", http.MethodGet, "/v2/apis", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApi updates the members of an api that are set in the request.
func (c *Client) UpdateApi(ctx context.Context, in *UpdateApiInput) (*UpdateApiOutput, error) {
	out := &UpdateApiOutput{}
	if err := c.client.InvokeREST(ctx, "UpdateApi", http.MethodPatch, "/v2/apis/{apiId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteApi deletes an api.
func (c *Client) DeleteApi(ctx context.Context, in *DeleteApiInput) (*DeleteApiOutput, error) {
	out := &DeleteApiOutput{}
	if err := c.client.InvokeREST(ctx, "DeleteApi", http.MethodDelete, "/v2/apis/{apiId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoute creates a route of an api.
func (c *Client) CreateRoute(ctx context.Context, in *CreateRouteInput) (*CreateRouteOutput, error) {
	out := &CreateRouteOutput{}
	if err := c.client.InvokeREST(ctx, "CreateRoute", http.MethodPost, "/v2/apis/{apiId}/routes", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoute gets a route of an api.
func (c *Client) GetRoute(ctx context.Context, in *GetRouteInput) (*GetRouteOutput, error) {
	out := &GetRouteOutput{}
	if err := c.client.InvokeREST(ctx, "GetRoute", http.MethodGet, "/v2/apis/{apiId}/routes/{routeId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRoutes gets a page of the routes of an api.
func (c *Client) GetRoutes(ctx context.Context, in *GetRoutesInput) (*GetRoutesOutput, error) {
	out := &GetRoutesOutput{}
	if err := c.client.InvokeREST(ctx, "GetRoutes", http.MethodGet, "/v2/apis/{apiId}/routes", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteRoute deletes a route of an api.
func (c *Client) DeleteRoute(ctx context.Context, in *DeleteRouteInput) (*DeleteRouteOutput, error) {
	out := &DeleteRouteOutput{}
	if err := c.client.InvokeREST(ctx, "DeleteRoute", http.MethodDelete, "/v2/apis/{apiId}/routes/{routeId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIntegration creates an integration of an api.
func (c *Client) CreateIntegration(ctx context.Context, in *CreateIntegrationInput) (*CreateIntegrationOutput, error) {
	out := &CreateIntegrationOutput{}
	if err := c.client.InvokeREST(ctx, "CreateIntegration", http.MethodPost, "/v2/apis/{apiId}/integrations", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIntegration gets an integration of an api.
func (c *Client) GetIntegration(ctx context.Context, in *GetIntegrationInput) (*GetIntegrationOutput, error) {
	out := &GetIntegrationOutput{}
	if err := c.client.InvokeREST(ctx, "GetIntegration", http.MethodGet, "/v2/apis/{apiId}/integrations/{integrationId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIntegrations gets a page of the integrations of an api.
func (c *Client) GetIntegrations(ctx context.Context, in *GetIntegrationsInput) (*GetIntegrationsOutput, error) {
	out := &GetIntegrationsOutput{}
	if err := c.client.InvokeREST(ctx, "GetIntegrations", http.MethodGet, "/v2/apis/{apiId}/integrations", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteIntegration deletes an integration of an api.
func (c *Client) DeleteIntegration(ctx context.Context, in *DeleteIntegrationInput) (*DeleteIntegrationOutput, error) {
	out := &DeleteIntegrationOutput{}
	if err := c.client.InvokeREST(ctx, "DeleteIntegration", http.MethodDelete, "/v2/apis/{apiId}/integrations/{integrationId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStage creates a stage of an api.
func (c *Client) CreateStage(ctx context.Context, in *CreateStageInput) (*CreateStageOutput, error) {
	out := &CreateStageOutput{}
	if err := c.client.InvokeREST(ctx, "CreateStage", http.MethodPost, "/v2/apis/{apiId}/stages", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStage gets a stage of an api.
func (c *Client) GetStage(ctx context.Context, in *GetStageInput) (*GetStageOutput, error) {
	out := &GetStageOutput{}
	if err := c.client.InvokeREST(ctx, "GetStage", http.MethodGet, "/v2/apis/{apiId}/stages/{stageName}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStages gets a page of the stages of an api.
func (c *Client) GetStages(ctx context.Context, in *GetStagesInput) (*GetStagesOutput, error) {
	out := &GetStagesOutput{}
	if err := c.client.InvokeREST(ctx, "GetStages", http.MethodGet, "/v2/apis/{apiId}/stages", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteStage deletes a stage of an api.
func (c *Client) DeleteStage(ctx context.Context, in *DeleteStageInput) (*DeleteStageOutput, error) {
	out := &DeleteStageOutput{}
	if err := c.client.InvokeREST(ctx, "DeleteStage", http.MethodDelete, "/v2/apis/{apiId}/stages/{stageName}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDeployment deploys an api to a stage.
func (c *Client) CreateDeployment(ctx context.Context, in *CreateDeploymentInput) (*CreateDeploymentOutput, error) {
	out := &CreateDeploymentOutput{}
	if err := c.client.InvokeREST(ctx, "CreateDeployment", http.MethodPost, "/v2/apis/{apiId}/deployments", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeployment gets a deployment of an api.
func (c *Client) GetDeployment(ctx context.Context, in *GetDeploymentInput) (*GetDeploymentOutput, error) {
	out := &GetDeploymentOutput{}
	if err := c.client.InvokeREST(ctx, "GetDeployment", http.MethodGet, "/v2/apis/{apiId}/deployments/{deploymentId}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeployments gets a page of the deployments of an api.
func (c *Client) GetDeployments(ctx context.Context, in *GetDeploymentsInput) (*GetDeploymentsOutput, error) {
	out := &GetDeploymentsOutput{}
	if err := c.client.InvokeREST(ctx, "GetDeployments", http.MethodGet, "/v2/apis/{apiId}/deployments", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// TagResource adds tags to a resource.
func (c *Client) TagResource(ctx context.Context, in *TagResourceInput) (*TagResourceOutput, error) {
	out := &TagResourceOutput{}
	if err := c.client.InvokeREST(ctx, "TagResource", http.MethodPost, "/v2/tags/{resource-arn}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// UntagResource removes the tags with the given keys from a resource.
func (c *Client) UntagResource(ctx context.Context, in *UntagResourceInput) (*UntagResourceOutput, error) {
	out := &UntagResourceOutput{}
	if err := c.client.InvokeREST(ctx, "UntagResource", http.MethodDelete, "/v2/tags/{resource-arn}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTags gets the tags of a resource.
func (c *Client) GetTags(ctx context.Context, in *GetTagsInput) (*GetTagsOutput, error) {
	out := &GetTagsOutput{}
	if err := c.client.InvokeREST(ctx, "GetTags", http.MethodGet, "/v2/tags/{resource-arn}", in, out, c.errors); err != nil {
		return nil, err
	}
	return out, nil
}
