package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"invclean/internal/domain/entity"
	"invclean/pkg/errcodes"
	"invclean/pkg/httpx/req"
	"invclean/pkg/httpx/reply"
	"invclean/pkg/lox"
)

func (s Server) getV1Selection(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, selectionResponse{
		ItemIDs: s.store.Selection(),
	})

	return nil
}

func (s Server) putV1Selection(w http.ResponseWriter, r *http.Request) error {
	var request replaceSelectionRequest

	if err := req.Read(r, &request); err != nil {
		return err
	}

	ids := lox.Map(request.ItemIDs, func(id uint32) entity.ItemID {
		return entity.ItemID(id)
	})

	if err := s.store.ReplaceSelection(ids); err != nil {
		return fmt.Errorf("store.ReplaceSelection: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s Server) getV1Active(w http.ResponseWriter, r *http.Request) error {
	response := activeRunResponse{}

	if runID, ok := s.sequencer.ActiveRun(); ok {
		response.Active = true
		response.RunID = runID
	}

	if result, ok := s.sequencer.LastResult(); ok {
		response.LastResult = &runResultResponse{
			RunID:    result.RunID,
			State:    result.State.String(),
			Disposed: result.Disposed,
			Reason:   result.Reason,
		}
	}

	reply.JSON(r.Context(), w, http.StatusOK, response)

	return nil
}

func (s Server) postV1Runs(w http.ResponseWriter, r *http.Request) error {
	var request startRunRequest

	if err := req.Read(r, &request); err != nil {
		return err
	}

	filter := entity.NewItemFilter(lox.Map(request.ItemIDs, func(id uint32) entity.ItemID {
		return entity.ItemID(id)
	})...)

	// The run outlives the request; only the cancellation is detached.
	runID := s.sequencer.StartRun(context.WithoutCancel(r.Context()), filter)

	reply.JSON(r.Context(), w, http.StatusAccepted, runStartedResponse{RunID: runID})

	return nil
}

func (s Server) deleteV1ActiveRun(w http.ResponseWriter, r *http.Request) error {
	if _, ok := s.sequencer.ActiveRun(); !ok {
		return failure.NewNotFoundError(
			"no active run",
			failure.WithCode(errcodes.RunNotActive),
			failure.WithDescription("No discard run is currently active"),
		)
	}

	s.sequencer.Abort()

	reply.OK(w)

	return nil
}

func (s Server) getV1Inventory(w http.ResponseWriter, r *http.Request) error {
	groups, err := s.snapshots.BuildSnapshot(r.Context())
	if err != nil {
		return fmt.Errorf("snapshots.BuildSnapshot: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, inventoryResponse{Groups: groups})

	return nil
}

func (s Server) getV1Price(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "itemID")

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid item id %q", raw),
			failure.WithCode(errcodes.InvalidItemID),
			failure.WithDescription("Item id must be a positive integer"),
		)
	}

	itemID := entity.ItemID(parsed)

	if info, ok := s.prices.Cached(itemID); ok {
		reply.JSON(r.Context(), w, http.StatusOK, newPriceResponse(info))
		return nil
	}

	s.prices.RequestFetch(context.WithoutCancel(r.Context()), itemID, s.world)

	description := "Price not cached yet"
	if s.prices.IsLoading(itemID) {
		description = "Price fetch in progress, retry shortly"
	}

	return failure.NewNotFoundError(
		fmt.Sprintf("price for item %d not cached", itemID),
		failure.WithCode(errcodes.PriceUnavailable),
		failure.WithDescription(description),
	)
}

func (s Server) postV1Command(w http.ResponseWriter, r *http.Request) error {
	var request commandRequest

	if err := req.Read(r, &request); err != nil {
		return err
	}

	if err := s.commands.Dispatch(r.Context(), request.Text); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("commands.Dispatch: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	reply.OK(w)

	return nil
}
