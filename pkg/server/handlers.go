// Copyright 2019-2025 The Liqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"k8s.io/klog/v2"

	"github.com/liqotech/cidrcalc/pkg/cidrcalc"
	"github.com/liqotech/cidrcalc/pkg/partitioner"
	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
	"github.com/liqotech/cidrcalc/pkg/utils/trace"
)

func (s *Server) splitHosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, done := trace.Start("Split hosts handler")
	defer done()

	var req partitioner.Request
	if err := decode(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if req.PrefixForEvenSplit != nil {
		s.handleError(w, errdefs.InvalidInputf("the prefix for even split is not allowed on %s", SplitHostsURI))
		return
	}
	s.split(w, &req)
}

func (s *Server) splitPrefix(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_, done := trace.Start("Split prefix handler")
	defer done()

	var req partitioner.Request
	if err := decode(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if len(req.HostCounts) > 0 {
		s.handleError(w, errdefs.InvalidInputf("the host count list is not allowed on %s", SplitPrefixURI))
		return
	}
	s.split(w, &req)
}

func (s *Server) split(w http.ResponseWriter, req *partitioner.Request) {
	cidrs, err := partitioner.Compute(req)
	if err != nil {
		s.handleError(w, errdefs.AsInvalidInput(err))
		return
	}
	s.sendJSON(w, &SplitResponse{CIDRs: cidrs}, http.StatusOK)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var model cidrcalc.Model
	if err := decode(r, &model); err != nil {
		s.handleError(w, err)
		return
	}

	created, err := s.handler.Create(r.Context(), &model)
	if err != nil {
		s.handleError(w, err)
		return
	}
	w.Header().Set("Location", CidrCalcsURI+"/"+created.UID)
	s.sendJSON(w, created, http.StatusCreated)
}

func (s *Server) read(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	model, err := s.handler.Read(r.Context(), ps.ByName(uidParam))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.sendJSON(w, model, http.StatusOK)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var model cidrcalc.Model
	if err := decode(r, &model); err != nil {
		s.handleError(w, err)
		return
	}

	uid := ps.ByName(uidParam)
	if model.UID != "" && model.UID != uid {
		s.handleError(w, errdefs.InvalidInputf("the body uid %q does not match the path uid %q", model.UID, uid))
		return
	}
	model.UID = uid

	updated, err := s.handler.Update(r.Context(), &model)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.sendJSON(w, updated, http.StatusOK)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := s.handler.Delete(r.Context(), ps.ByName(uidParam)); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		klog.Error(err)
	}
}

func decode(r *http.Request, into interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		return errdefs.AsInvalidInput(fmt.Errorf("failed to decode the request body: %w", err))
	}
	return nil
}
