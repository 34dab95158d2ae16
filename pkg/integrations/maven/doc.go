// Package maven resolves the direct dependencies of a Maven artifact from a
// Maven-layout HTTP repository.
//
// # Overview
//
// Resolution is a three-step pipeline, one request per network step:
//
//  1. [Client.ResolveVersion] fetches {repo}/{group/path}/{artifact}/maven-metadata.xml
//     and selects a version
//  2. [Client.FetchPOM] fetches {repo}/{group/path}/{artifact}/{version}/{artifact}-{version}.pom
//  3. [ExtractDependencies] reads the <dependencies> block of the POM
//
// The sequencing itself lives in [deps.Resolver].
//
// # Usage
//
//	client := maven.NewClient(maven.DefaultRepositoryURL, 0)
//
//	coord, err := client.ResolveVersion(ctx, "org.springframework:spring-core")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pom, err := client.FetchPOM(ctx, coord)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	deps, err := maven.ExtractDependencies(pom)
//
// # Version Selection
//
// The <latest> element wins, then <release>. Otherwise the highest entry of
// <versions> is taken, comparing only the fully numeric dot-separated parts
// of each version as integers ("1.10.0" > "1.9.3"). Suffixes such as
// "-beta" are ignored for ordering, so "1.0-beta" keys the same as "1".
//
// # Namespaces
//
// POM elements are looked up in the Maven namespace
// (http://maven.apache.org/POM/4.0.0) first and without a namespace second.
//
// # Errors
//
// All failures are [*errors.Error] values; see the method docs for the codes
// each step produces.
//
// [deps.Resolver]: github.com/matzehuels/mvndeps/pkg/deps.Resolver
// [*errors.Error]: github.com/matzehuels/mvndeps/pkg/errors.Error
package maven
