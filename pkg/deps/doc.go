// Package deps sequences a direct-dependency resolution for one Maven package.
//
// # Overview
//
// [Resolver.Resolve] runs three steps and stops at the first failure:
//
//  1. Select a version from the package's maven-metadata.xml
//  2. Fetch the POM for that version
//  3. Extract the declared dependencies from the POM
//
// The network steps are supplied by a [Source], normally a [maven.Client].
// Only direct dependencies are reported; dependencies of dependencies are
// never fetched.
//
// # Usage
//
//	client := maven.NewClient("https://repo1.maven.org/maven2", 0)
//	res, err := deps.NewResolver(client, logger).Resolve(ctx, "org.springframework:spring-core")
//	if err != nil {
//	    // err is an *errors.Error; see pkg/errors for the codes
//	}
//	for _, d := range res.Dependencies {
//	    fmt.Println(d.Name, d.Version)
//	}
//
// # Errors
//
// Errors from the source and the extractor are returned unchanged, so their
// codes (PACKAGE_NOT_FOUND, POM_PARSE_ERROR, ...) reach the caller intact.
// The resolver never retries and never exits the process.
//
// [maven.Client]: github.com/matzehuels/mvndeps/pkg/integrations/maven.Client
package deps
