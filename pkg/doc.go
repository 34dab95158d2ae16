// Package pkg provides the libraries behind the mvndeps command.
//
// # Overview
//
// mvndeps lists the direct dependencies of one Maven package. The pkg
// directory is organized as follows:
//
//  1. [deps] - Orchestration (version discovery → POM retrieval → extraction)
//  2. [integrations] - HTTP transport shared by repository clients
//  3. [integrations/maven] - Maven coordinates, metadata, POM parsing
//  4. [errors] - Coded errors and input validation
//  5. [observability] - Hooks for resolution and HTTP events
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
//	groupId:artifactId
//	         ↓
//	    [integrations/maven] ResolveVersion (maven-metadata.xml)
//	         ↓
//	    [integrations/maven] FetchPOM
//	         ↓
//	    [integrations/maven] ExtractDependencies
//	         ↓
//	    []Dependency in document order
//
// [deps.Resolver] runs these steps in order and stops at the first failure.
//
// [deps]: github.com/matzehuels/mvndeps/pkg/deps
// [deps.Resolver]: github.com/matzehuels/mvndeps/pkg/deps#Resolver
// [integrations]: github.com/matzehuels/mvndeps/pkg/integrations
// [integrations/maven]: github.com/matzehuels/mvndeps/pkg/integrations/maven
// [errors]: github.com/matzehuels/mvndeps/pkg/errors
// [observability]: github.com/matzehuels/mvndeps/pkg/observability
// [buildinfo]: github.com/matzehuels/mvndeps/pkg/buildinfo
package pkg
