// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.
package field

const (
	Operation            = "operation"
	OperationID          = "operationID"
	Bucket               = "bucket"
	ObjectKey            = "objectKey"
	Path                 = "path"
	Region               = "region"
	Service              = "service"
	Endpoint             = "endpoint"
	Method               = "method"
	ContentType          = "contentType"
	ContentLength        = "contentLength"
	PayloadHash          = "payloadHash"
	CredentialScope      = "credentialScope"
	SignedHeaders        = "signedHeaders"
	Headers              = "headers"
	CanonicalRequestHash = "canonicalRequestHash"
	AccessKeyID          = "accessKeyID"
	StatusCode           = "statusCode"
	ETag                 = "etag"
	Elapsed              = "elapsed"
	Error                = "error"
	ErrorName            = "errorName"
	ConfigFile           = "configFile"
)
