// Copyright 2019 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package grpcutil

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// SecurityOption records options about tls
type SecurityOption struct {
	CAPath   string `toml:"cacert-path" json:"cacert-path"`
	CertPath string `toml:"cert-path" json:"cert-path"`
	KeyPath  string `toml:"key-path" json:"key-path"`
}

func loadCertPool(caPath string) (*x509.CertPool, error) {
	ca, err := os.ReadFile(caPath)
	if err != nil {
		return nil, errors.Errorf("could not read ca certificate: %s", err)
	}
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(ca) {
		return nil, errors.New("failed to append ca certs")
	}
	return certPool, nil
}

func (s SecurityOption) loadCertificates() ([]tls.Certificate, error) {
	if len(s.CertPath) == 0 || len(s.KeyPath) == 0 {
		return nil, nil
	}
	certificate, err := tls.LoadX509KeyPair(s.CertPath, s.KeyPath)
	if err != nil {
		return nil, errors.Errorf("could not load key pair: %s", err)
	}
	return []tls.Certificate{certificate}, nil
}

// ClientTLSConfig returns the tls config of a client, or nil when no CA is configured.
func (s SecurityOption) ClientTLSConfig() (*tls.Config, error) {
	if len(s.CAPath) == 0 {
		return nil, nil
	}
	certificates, err := s.loadCertificates()
	if err != nil {
		return nil, err
	}
	certPool, err := loadCertPool(s.CAPath)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: certificates,
		RootCAs:      certPool,
	}, nil
}

// ServerTLSConfig returns the tls config of a server, or nil when no certificate is configured. With a CA, clients
// must present a certificate signed by it.
func (s SecurityOption) ServerTLSConfig() (*tls.Config, error) {
	certificates, err := s.loadCertificates()
	if err != nil || certificates == nil {
		return nil, err
	}
	cfg := &tls.Config{Certificates: certificates}
	if len(s.CAPath) != 0 {
		certPool, err := loadCertPool(s.CAPath)
		if err != nil {
			return nil, err
		}
		cfg.ClientCAs = certPool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}
	return cfg, nil
}

// ServerOptions returns the transport credentials option of a server.
func ServerOptions(security SecurityOption) ([]grpc.ServerOption, error) {
	tlsCfg, err := security.ServerTLSConfig()
	if err != nil {
		return nil, err
	}
	if tlsCfg == nil {
		return nil, nil
	}
	return []grpc.ServerOption{grpc.Creds(credentials.NewTLS(tlsCfg))}, nil
}

// GetClientConn returns a gRPC client connection.
func GetClientConn(ctx context.Context, addr string, security SecurityOption, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opt := grpc.WithTransportCredentials(insecure.NewCredentials())
	tlsCfg, err := security.ClientTLSConfig()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		opt = grpc.WithTransportCredentials(credentials.NewTLS(tlsCfg))
	}
	cc, err := grpc.DialContext(ctx, addr, append([]grpc.DialOption{opt}, opts...)...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return cc, nil
}
