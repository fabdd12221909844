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

package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sabi/sabi-s3/apierrors"
	"github.com/sabi/sabi-s3/config"
	"github.com/sabi/sabi-s3/httpclient"
	"github.com/sabi/sabi-s3/index"
	"github.com/sabi/sabi-s3/logger"
	"github.com/sabi/sabi-s3/logger/field"
	"github.com/sabi/sabi-s3/s3"
	"github.com/sabi/sabi-s3/version"
)

const (
	bucketFlag      = "bucket"
	keyFlag         = "key"
	bodyFlag        = "body"
	contentTypeFlag = "content-type"
	regionFlag      = "region"
)

// putObjectOutput is printed on stdout after a successful upload.
type putObjectOutput struct {
	ETag string `json:"ETag"`
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "s3api"
	app.Usage = "Signed requests against Amazon S3"
	app.Version = version.String()
	app.Writer = stdout
	app.Commands = []cli.Command{
		putObjectCommand(stdout),
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() > 0 {
			return errors.Errorf("unknown command %q", c.Args().First())
		}
		return cli.ShowAppHelp(c)
	}
	return app
}

func putObjectCommand(stdout io.Writer) cli.Command {
	return cli.Command{
		Name:  "put-object",
		Usage: "Upload a local file as an object",
		Flags: []cli.Flag{
			cli.StringFlag{Name: bucketFlag, Usage: "target bucket"},
			cli.StringFlag{Name: keyFlag, Usage: "object key"},
			cli.StringFlag{Name: bodyFlag, Usage: "path of the file to upload"},
			cli.StringFlag{Name: contentTypeFlag, Usage: "content type of the object", Value: s3.DefaultContentType},
			cli.StringFlag{Name: regionFlag, Usage: "region of the bucket, overrides the configured default"},
		},
		Action: func(c *cli.Context) error {
			return putObject(c, stdout)
		},
	}
}

func putObject(c *cli.Context, stdout io.Writer) error {
	for _, name := range []string{bucketFlag, keyFlag, bodyFlag} {
		if strings.TrimSpace(c.String(name)) == "" {
			return apierrors.NewRequiredValueMissingError("--" + name)
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "s3api: unable to load configuration")
	}
	if os.Getenv(logger.LOGLEVEL_ENV_VAR) == "" {
		logger.SetLevel(cfg.LogLevel)
	}
	logger.Debug("Loaded configuration", logger.Fields{field.ConfigFile: config.FilePath(), "config": cfg.String()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creds, err := cfg.ResolveCredentials(ctx)
	if err != nil {
		return errors.Wrap(err, "s3api: unable to read credentials")
	}

	client := &s3.Client{
		Credentials: creds,
		Bucket: s3.Bucket{
			Name:           c.String(bucketFlag),
			Endpoint:       cfg.Endpoint,
			ForcePathStyle: cfg.ForcePathStyle,
		},
		DefaultRegion: cfg.Region(),
		Dispatcher:    s3.NewHTTPDispatcher(httpclient.New(cfg.RoundtripTimeout, cfg.InsecureSkipVerify)),
	}

	etag, err := client.PutObject(ctx, &s3.FileRequest{
		FilePath:    c.String(bodyFlag),
		ObjectKey:   c.String(keyFlag),
		ContentType: c.String(contentTypeFlag),
		Region:      index.NewRegionCode(c.String(regionFlag)),
	})
	if err != nil {
		return err
	}
	return json.NewEncoder(stdout).Encode(putObjectOutput{ETag: etag.String()})
}
