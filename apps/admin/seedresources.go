package main

import (
	"context"
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
)

// seedResources loads curated resources from a JSON file and registers them.
func (cli *commandLine) seedResources(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading seed file")
	}

	var seeds []resource.NewResource
	if err = json.Unmarshal(data, &seeds); err != nil {
		return errors.Wrap(err, "parsing seed file")
	}

	ctx := context.Background()
	for i, nr := range seeds {
		if err = core.Validate.Struct(nr); err != nil {
			return errors.Wrapf(err, "validating resource %d", i)
		}
		res, err := cli.resourceSvc.Create(ctx, nr)
		if err != nil {
			return errors.Wrapf(err, "creating resource %d", i)
		}
		logger.Printf("created resource %s (%s: %s)", res.ID, res.DomainID, res.Title)
	}
	logger.Printf("seeded %d resources", len(seeds))
	return nil
}
