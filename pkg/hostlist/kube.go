// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package hostlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// DefaultNodeLimit caps how many nodes a single enumeration returns.
const DefaultNodeLimit = 100

// KubeNodes enumerates cluster nodes as census hosts, optionally
// filtered by a label selector. It is the fallback directory service
// used when no explicit host list is supplied.
type KubeNodes struct {
	// Kubeconfig is the path to the kubeconfig file. Empty uses the
	// KUBECONFIG environment variable, ~/.kube/config, or the in-cluster
	// service account, in that order.
	Kubeconfig string

	// LabelSelector filters nodes, e.g. "nodeGroup=gpu".
	LabelSelector string

	// Limit is the maximum number of nodes returned (default 100).
	Limit int64

	// Client overrides the Kubernetes client, used in tests.
	Client kubernetes.Interface
}

// List implements Lister. Node names are returned sorted
// case-insensitively for stable run output.
func (k *KubeNodes) List(ctx context.Context) ([]string, error) {
	client := k.Client
	if client == nil {
		var err error
		client, err = buildClient(k.Kubeconfig)
		if err != nil {
			return nil, err
		}
	}

	limit := k.Limit
	if limit <= 0 {
		limit = DefaultNodeLimit
	}

	list, err := client.CoreV1().Nodes().List(ctx, metav1.ListOptions{
		LabelSelector: k.LabelSelector,
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	hosts := make([]string, 0, len(list.Items))
	for _, n := range list.Items {
		hosts = append(hosts, n.Name)
	}

	sort.Slice(hosts, func(i, j int) bool {
		return strings.ToLower(hosts[i]) < strings.ToLower(hosts[j])
	})

	return hosts, nil
}

func buildClient(kubeconfig string) (kubernetes.Interface, error) {
	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")

		if kubeconfig == "" {
			kubeconfig = filepath.Join(homedir.HomeDir(), ".kube", "config")
			if _, err := os.Stat(kubeconfig); os.IsNotExist(err) {
				kubeconfig = ""
			}
		}
	}

	var config *rest.Config
	var err error
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, nil
}
