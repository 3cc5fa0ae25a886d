// Package hostlist supplies the hosts a census run queries. Callers
// either provide an explicit list (Static) or fall back to an external
// enumeration collaborator such as KubeNodes, which lists cluster nodes
// filtered by label selector.
package hostlist
