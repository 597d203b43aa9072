package kinesisadapter

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// recordJSON returns the stream record in the form it has on the
// DynamoDB Streams wire.
func recordJSON(record types.Record) map[string]interface{} {

	obj := make(map[string]interface{})
	putString(obj, "awsRegion", record.AwsRegion)
	putString(obj, "eventID", record.EventID)
	if len(record.EventName) > 0 {
		obj["eventName"] = string(record.EventName)
	}
	putString(obj, "eventSource", record.EventSource)
	putString(obj, "eventVersion", record.EventVersion)

	if sr := record.Dynamodb; sr != nil {
		dynamodb := make(map[string]interface{})
		if sr.ApproximateCreationDateTime != nil {
			dynamodb["ApproximateCreationDateTime"] = float64(sr.ApproximateCreationDateTime.UnixNano()) / 1e9
		}
		if sr.Keys != nil {
			dynamodb["Keys"] = attributeMapJSON(sr.Keys)
		}
		if sr.NewImage != nil {
			dynamodb["NewImage"] = attributeMapJSON(sr.NewImage)
		}
		if sr.OldImage != nil {
			dynamodb["OldImage"] = attributeMapJSON(sr.OldImage)
		}
		putString(dynamodb, "SequenceNumber", sr.SequenceNumber)
		if sr.SizeBytes != nil {
			dynamodb["SizeBytes"] = *sr.SizeBytes
		}
		if len(sr.StreamViewType) > 0 {
			dynamodb["StreamViewType"] = string(sr.StreamViewType)
		}
		obj["dynamodb"] = dynamodb
	}

	if id := record.UserIdentity; id != nil {
		identity := make(map[string]interface{})
		putString(identity, "PrincipalId", id.PrincipalId)
		putString(identity, "Type", id.Type)
		obj["userIdentity"] = identity
	}
	return obj
}

func putString(obj map[string]interface{}, name string, value *string) {
	if value != nil {
		obj[name] = *value
	}
}

func attributeMapJSON(attrs map[string]types.AttributeValue) map[string]interface{} {
	obj := make(map[string]interface{}, len(attrs))
	for name, attr := range attrs {
		if av := attributeJSON(attr); av != nil {
			obj[name] = av
		}
	}
	return obj
}

// attributeJSON returns the typed DynamoDB JSON of an attribute
// value, i.e. {"S":"text"} or {"N":"12"}. Binary values are
// base64 encoded by encoding/json.
func attributeJSON(attr types.AttributeValue) map[string]interface{} {

	switch v := attr.(type) {
	case *types.AttributeValueMemberS:
		return map[string]interface{}{"S": v.Value}
	case *types.AttributeValueMemberN:
		return map[string]interface{}{"N": v.Value}
	case *types.AttributeValueMemberB:
		return map[string]interface{}{"B": v.Value}
	case *types.AttributeValueMemberSS:
		return map[string]interface{}{"SS": v.Value}
	case *types.AttributeValueMemberNS:
		return map[string]interface{}{"NS": v.Value}
	case *types.AttributeValueMemberBS:
		return map[string]interface{}{"BS": v.Value}
	case *types.AttributeValueMemberBOOL:
		return map[string]interface{}{"BOOL": v.Value}
	case *types.AttributeValueMemberNULL:
		return map[string]interface{}{"NULL": v.Value}
	case *types.AttributeValueMemberM:
		return map[string]interface{}{"M": attributeMapJSON(v.Value)}
	case *types.AttributeValueMemberL:
		list := make([]interface{}, 0, len(v.Value))
		for _, item := range v.Value {
			if av := attributeJSON(item); av != nil {
				list = append(list, av)
			}
		}
		return map[string]interface{}{"L": list}
	}
	return nil
}
