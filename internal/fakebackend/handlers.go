package fakebackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/token"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

type authenticateRequest struct {
	AccessToken string `json:"accessToken"`
}

func extraInfoFor(name string) string {
	return fmt.Sprintf("This is some extra info about %s that is saved in the API", name)
}

func (r *Router) authenticate(ctx context.Context, _ *http.Request, body []byte) response {
	var in authenticateRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return badRequest(fmt.Sprintf("%v: %v", common.ErrorInvalidBody, err))
	}

	profile, err := r.profiles.Me(ctx, in.AccessToken)
	if err != nil {
		r.log.Warn(ctx, "provider rejected token", "error", err)
		return unauthorized(err.Error())
	}

	acc, found := r.store.FindByExternalID(profile.ID)
	if !found {
		acc, err = r.store.Create(ctx, models.Account{
			ExternalID: profile.ID,
			Name:       profile.Name,
			ExtraInfo:  extraInfoFor(profile.Name),
		})
		if err != nil {
			r.log.Error(ctx, "account create failed", "error", err)
			return internalError(err.Error())
		}
		r.log.Info(ctx, "account created", "id", acc.ID, "external_id", acc.ExternalID)
	}

	tok, err := token.Issue(acc.ID, r.now())
	if err != nil {
		return internalError(err.Error())
	}
	return ok(acc.WithToken(tok))
}

// requireAuth rejects requests without a fake bearer token before h runs.
func (r *Router) requireAuth(h handlerFunc) handlerFunc {
	return func(ctx context.Context, req *http.Request, body []byte) response {
		if !isLoggedIn(req) {
			return unauthorized("")
		}
		return h(ctx, req, body)
	}
}

func isLoggedIn(req *http.Request) bool {
	return strings.HasPrefix(req.Header.Get(common.AuthorizationHeaderName), common.BearerPrefix+common.FakeTokenPrefix)
}

// idFromPath parses the last path segment. A non-numeric segment reports
// false and matches no account.
func idFromPath(path string) (int, bool) {
	seg := path[strings.LastIndex(path, "/")+1:]
	id, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *Router) list(context.Context, *http.Request, []byte) response {
	return ok(r.store.List())
}

func (r *Router) getByID(_ context.Context, req *http.Request, _ []byte) response {
	id, valid := idFromPath(req.URL.Path)
	if !valid {
		return okEmpty()
	}
	acc, found := r.store.Get(id)
	if !found {
		return okEmpty()
	}
	return ok(acc)
}

func (r *Router) update(ctx context.Context, req *http.Request, body []byte) response {
	var params models.AccountParams
	if err := json.Unmarshal(body, &params); err != nil {
		return badRequest(fmt.Sprintf("%v: %v", common.ErrorInvalidBody, err))
	}

	id, valid := idFromPath(req.URL.Path)
	if !valid {
		return okEmpty()
	}

	acc, found, err := r.store.Update(ctx, id, params)
	if err != nil {
		r.log.Error(ctx, "account update failed", "id", id, "error", err)
		return internalError(err.Error())
	}
	if !found {
		return okEmpty()
	}
	return ok(acc)
}

func (r *Router) delete(ctx context.Context, req *http.Request, _ []byte) response {
	id, valid := idFromPath(req.URL.Path)
	if !valid {
		return okEmpty()
	}
	if err := r.store.Delete(ctx, id); err != nil {
		r.log.Error(ctx, "account delete failed", "id", id, "error", err)
		return internalError(err.Error())
	}
	return okEmpty()
}
