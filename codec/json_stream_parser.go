package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// JSONStreamParser walks the tokens of a JSON document and hands
// each element to the unmarshaller of its enclosing object or
// array.
type JSONStreamParser struct {
	root Unmarshaller
}

func NewJSONStreamParser(u Unmarshaller) *JSONStreamParser {

	return &JSONStreamParser{
		root: u,
	}
}

// determines type of current parsed json element
func typeFromToken(prevType ElementType, token json.Token) (ElementType, error) {

	switch t := token.(type) {

	case json.Delim:

		switch t {
		case '{':
			return EtObject, nil

		case '[':
			return EtArray, nil

		case '}', ']':
			return EtUnknown, nil

		default:
			return EtUnknown, fmt.Errorf("unrecognized delimiter '%s'", t.String())
		}

	case string, json.Number, float64, bool, nil:

		switch prevType {
		case EtKey:
			return EtValue, nil

		case EtValue:
			return EtKey, nil

		case EtArray, EtArrayValue:
			return EtArrayValue, nil

		default: /* EtObject */
			if _, ok := token.(string); ok {
				return EtKey, nil
			}
			return EtUnknown, fmt.Errorf("key was not of type string")
		}

	default:
		return EtUnknown, fmt.Errorf("unrecognized token type %T", token)
	}
}

// Parse reads the JSON document from input. Numbers are
// delivered to the unmarshallers as json.Number values.
func (p *JSONStreamParser) Parse(input io.Reader) (Unmarshaller, error) {

	var (
		err error

		token json.Token

		keyPathLastIdx, umStackLastIdx     int
		currType, prevType                 ElementType
		currUnmarshaller, nextUnmarshaller Unmarshaller

		lastKey        string
		lastArrayIndex int
	)

	decoder := json.NewDecoder(input)
	decoder.UseNumber()

	keyPath := []string{""}
	umStack := []Unmarshaller{p.root}
	lastArrayIndex = -1

	if token, err = decoder.Token(); err != nil {
		if err == io.EOF {
			// empty document
			return umStack[0], nil
		}
		return nil, err
	}
	if prevType, err = typeFromToken(EtUnknown, token); err != nil {
		return nil, err
	}
	if prevType != EtObject && prevType != EtArray {
		return nil, fmt.Errorf("document is not a json object or array")
	}

	for {
		if token, err = decoder.Token(); err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		keyPathLastIdx = len(keyPath) - 1
		umStackLastIdx = len(umStack) - 1

		lastKey = keyPath[keyPathLastIdx]

		currUnmarshaller = umStack[umStackLastIdx]
		if currType, err = typeFromToken(prevType, token); err != nil {
			return nil, err
		}

		switch currType {
		case EtKey:
			keyPath = append(keyPath, token.(string))
			lastArrayIndex = -1

		case EtUnknown:
			// pop last node off stack as we reached
			// the end of a json object or array
			umStack = umStack[:umStackLastIdx]
			keyPath = keyPath[:keyPathLastIdx]

			if len(umStack) == 0 {
				// the root closed so only whitespace may follow
				if _, err = decoder.Token(); err != io.EOF {
					if err == nil {
						err = fmt.Errorf("unexpected content after json document")
					}
					return nil, err
				}
				return currUnmarshaller, nil
			}
			if umStackLastIdx > 0 {
				if err = umStack[umStackLastIdx-1].Finalize(keyPath[1:keyPathLastIdx], lastKey, currUnmarshaller); err != nil {
					return nil, err
				}
			}

			if len(lastKey) > 0 && lastKey[0] == '@' {
				// returning to the enclosing array
				lastArrayIndex, _ = strconv.Atoi(lastKey[1:])
				currType = EtArrayValue
			} else {
				lastArrayIndex = -1
			}

		case EtObject, EtArray:
			if len(umStack) == len(keyPath) {
				// array elements do not have a key
				// so push an implicit placeholder key
				lastKey = "@" + strconv.Itoa(lastArrayIndex+1)
				keyPath = append(keyPath, lastKey)
				keyPathLastIdx++
			}

			if nextUnmarshaller, umStack[umStackLastIdx], err = currUnmarshaller.Unmarshal(
				keyPath[1:keyPathLastIdx], lastKey, currType, nil); err != nil {
				return nil, err
			}
			umStack = append(umStack, nextUnmarshaller)
			lastArrayIndex = -1

		case EtValue:
			if _, umStack[umStackLastIdx], err = currUnmarshaller.Unmarshal(
				keyPath[1:keyPathLastIdx], lastKey, currType, token); err != nil {
				return nil, err
			}
			keyPath = keyPath[:keyPathLastIdx]
			lastArrayIndex = -1

		default: /* EtArrayValue */
			lastArrayIndex++
			if _, umStack[umStackLastIdx], err = currUnmarshaller.Unmarshal(
				keyPath[1:], "@"+strconv.Itoa(lastArrayIndex), currType, token); err != nil {
				return nil, err
			}
		}
		prevType = currType
	}
}
