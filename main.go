// Copyright 2024 InternEvo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:generate protoc --proto_path=proto/ --go_out=sampler/ --go_opt=paths=source_relative --go-grpc_out=sampler/ --go-grpc_opt=paths=source_relative sampler.proto

// Package main implements the sampler server. The initialization and
// termination of the server may be invoked by the training loop, which
// provides the dataset metadata and the sampling parameters.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/SHshenhao/InternEvo/sampler"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	flag.Parse()

	if err := serve(*port); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer()
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal)

	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		server.GracefulStop()
	}(done, server)

	sampler.RegisterSamplerServer(server, sampler.NewSamplerServer(done))

	return server
}
