// This file triggers Go code generation from OpenAPI contracts.
// Run manually with:
//   go generate ./tools/codegen/openapi/go
//
// Generates code into /generated/go/<domain>/ following config files
// stored under /tools/codegen/openapi/go/configs/.

package main

// shared components
//go:generate go tool oapi-codegen -config ./configs/problemdetails.yaml ../../../../contracts/common/problemdetails.yaml

//go:generate go tool oapi-codegen -config ./configs/events.yaml   ../../../../contracts/events.yaml
//go:generate go tool oapi-codegen -config ./configs/bookings.yaml ../../../../contracts/bookings.yaml

func main() {}
