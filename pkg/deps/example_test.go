package deps_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/matzehuels/mvndeps/pkg/deps"
	"github.com/matzehuels/mvndeps/pkg/integrations/maven"
)

func ExampleResolver_Resolve() {
	// A tiny repository with one package
	files := map[string]string{
		"/org/demo/app/maven-metadata.xml": `<metadata><versioning><latest>1.2</latest></versioning></metadata>`,
		"/org/demo/app/1.2/app-1.2.pom": `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>2.0.9</version></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId></dependency>
  </dependencies>
</project>`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	resolver := deps.NewResolver(maven.NewClient(srv.URL, 0), nil)
	res, err := resolver.Resolve(context.Background(), "org.demo:app")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("package:", res.Package)
	for i, d := range res.Dependencies {
		fmt.Printf("%d. %s : %s\n", i+1, d.Name, d.Version)
	}
	// Output:
	// package: org.demo:app:1.2
	// 1. org.slf4j:slf4j-api : 2.0.9
	// 2. junit:junit : UNKNOWN
}
