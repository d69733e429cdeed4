// Package api provides the fabric inventory REST API.
//
//	@title						Fabric Inventory API
//	@version					1.0
//	@description				ACI fabric object inventory API
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package api
